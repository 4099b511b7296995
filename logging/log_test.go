// Copyright (C) 2024-2025 the go-exposure authors.
// This file is part of go-exposure
//
// go-exposure is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-exposure is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-exposure.  If not, see <https://www.gnu.org/licenses/>.

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exposurekit/go-exposure/test/partitiontest"
)

// Most of the methods are pure wrappers; we trust the logrus coverage and
// test only the behavior this package adds.

func isJSON(s string) bool {
	var js map[string]interface{}
	return json.Unmarshal([]byte(s), &js) == nil
}

func TestOutputNewLogger(t *testing.T) {
	partitiontest.PartitionTest(t)
	a := require.New(t)

	var buf bytes.Buffer
	nl := NewLogger()
	nl.SetOutput(&buf)

	nl.Info("Should show up in the new logger only")

	a.Contains(buf.String(), "Should show up in the new logger only")
}

func TestSetGetLevel(t *testing.T) {
	partitiontest.PartitionTest(t)

	nl := NewLogger()
	require.Equal(t, Info, nl.GetLevel())
	nl.SetLevel(Error)
	require.Equal(t, Error, nl.GetLevel())
	require.True(t, nl.IsLevelEnabled(Error))
	require.False(t, nl.IsLevelEnabled(Debug))
}

func TestLevelFiltersOutput(t *testing.T) {
	partitiontest.PartitionTest(t)
	a := require.New(t)

	var buf bytes.Buffer
	nl := NewLogger()
	nl.SetOutput(&buf)

	nl.Debug("ABC should not show up")
	nl.Info("DEF should show up")
	nl.Warn("GHI should show up")

	a.NotContains(buf.String(), "ABC should not show up")
	a.Contains(buf.String(), "DEF should show up")
	a.Contains(buf.String(), "GHI should show up")
}

func TestWithFields(t *testing.T) {
	partitiontest.PartitionTest(t)
	a := require.New(t)

	var buf bytes.Buffer
	nl := NewLogger()
	nl.SetOutput(&buf)

	nl.WithFields(Fields{"stop": "22/7"}).Info("approximated")

	a.Contains(buf.String(), "stop=22/7")
	a.Contains(buf.String(), "approximated")
}

func TestSetJSONFormatter(t *testing.T) {
	partitiontest.PartitionTest(t)
	a := require.New(t)

	var buf bytes.Buffer
	nl := NewLogger()
	nl.SetOutput(&buf)
	nl.SetJSONFormatter()

	nl.Info("json line")

	line := buf.String()
	a.True(isJSON(line), "not JSON: %s", line)
}
