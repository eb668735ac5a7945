package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FoodOrder-api/pkg/logger"
)

func TestNew_ProductionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	l.Info().Str("app", "foodorder").Msg("hola")
	l.Debug().Msg("no debe salir")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "hola", line["message"])
	assert.Equal(t, "foodorder", line["app"])
	assert.Equal(t, "info", line["level"])
}

func TestComponent_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})

	zl := l.Component("memory_store")
	zl.Debug().Msg("x")
	assert.Contains(t, buf.String(), `"component":"memory_store"`)
}

func TestNew_NivelDesconocidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "verbose", Output: &buf})

	l.Debug().Msg("oculto")
	l.Info().Msg("visible")
	assert.NotContains(t, buf.String(), "oculto")
	assert.Contains(t, buf.String(), "visible")
}

func TestNop_NoEscribe(t *testing.T) {
	l := logger.Nop()
	assert.NotPanics(t, func() {
		l.Error().Msg("nada")
		zl := l.Component("x")
		zl.Info().Msg("nada")
	})
	assert.Equal(t, zerolog.Disabled, l.Zerolog().GetLevel())
}
