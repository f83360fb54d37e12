package admin

import (
	"context"
	"log/slog"
	"testing"

	"github.com/mchmarny/adminnav/pkg/registry"
	"github.com/mchmarny/adminnav/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAppliesLogLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	tests := []struct {
		name      string
		env       string
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{name: "explicit debug", env: "error", level: "debug", wantDebug: true, wantInfo: true},
		{name: "explicit warn", env: "debug", level: "warn", wantDebug: false, wantInfo: false},
		{name: "env fallback", env: "debug", level: "", wantDebug: true, wantInfo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.env)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			err := Run(ctx, registry.New(), nil, tt.level, server.WithPort(0))
			require.NoError(t, err)

			assert.Equal(t, tt.wantDebug, slog.Default().Enabled(context.Background(), slog.LevelDebug))
			assert.Equal(t, tt.wantInfo, slog.Default().Enabled(context.Background(), slog.LevelInfo))
		})
	}
}
