package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, DebugLevel)

	log.Debug("Debug message", map[string]interface{}{
		"key1": "value1",
	})

	var record map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &record)

	assert.NoError(t, err)
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "Debug message", record["message"])
	assert.Equal(t, "value1", record["key1"])
	assert.Contains(t, record, "timestamp")
	assert.Contains(t, record, "file")
	assert.Contains(t, record, "line")
}

func TestJSONLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, WarnLevel)

	log.Debug("should not appear", nil)
	log.Info("should not appear either", nil)
	assert.Equal(t, "", buf.String())

	log.Warn("visible", nil)
	assert.Contains(t, buf.String(), "visible")
}

func TestJSONLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, InfoLevel).WithField("component", "resolver")

	log.Info("hello", map[string]interface{}{"pair": "EUR/USD"})

	var record map[string]interface{}
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "resolver", record["component"])
	assert.Equal(t, "EUR/USD", record["pair"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, ErrorLevel, ParseLevel("ERROR"))
	assert.Equal(t, InfoLevel, ParseLevel(""))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
}
