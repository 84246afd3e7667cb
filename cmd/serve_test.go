package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/minutes-api/pkg/config"
)

func TestServeCommandHelp(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"serve", "--help"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Start the Minutes API server")
	assert.Contains(t, buf.String(), "--port")
}

func TestServeCommandInvalidPort(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"serve", "--port", "invalid"})

	assert.Error(t, cmd.Execute())
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCmd()
	serveCmd, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	hostFlag := serveCmd.Flags().Lookup("host")
	require.NotNil(t, hostFlag)
	assert.Equal(t, "", hostFlag.DefValue)

	portFlag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, portFlag)
	assert.Equal(t, "0", portFlag.DefValue)
}

func TestServerOptions(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    10 * time.Minute,
			MaxHeaderBytes:  1 << 20,
			MaxRequestBytes: 64 << 20,
		},
		Security: config.SecurityConfig{
			EnableCORS:  true,
			CORSOrigins: []string{"*"},
		},
		RateLimiting: config.RateLimitConfig{Enabled: true, RPS: 5, Burst: 20},
	}

	opts := serverOptions(cfg, "127.0.0.1", 9090)

	assert.Equal(t, "127.0.0.1:9090", opts.Address)
	assert.Equal(t, 30*time.Second, opts.ReadTimeout)
	assert.Equal(t, 10*time.Minute, opts.WriteTimeout)
	assert.Equal(t, int64(64<<20), opts.MaxRequestBytes)
	assert.True(t, opts.EnableCORS)
	assert.Equal(t, []string{"*"}, opts.CORSOrigins)
	assert.True(t, opts.RateLimitEnabled)
	assert.Equal(t, 5.0, opts.RateLimitRPS)
	assert.Equal(t, 20, opts.RateLimitBurst)
}
