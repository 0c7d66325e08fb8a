package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJson_OverlaysValues(t *testing.T) {
	path := writeTempConfig(t, `{
		"endpoint_addr": ":7070",
		"database_dsn": "postgres://json",
		"secret_key": "json-secret",
		"token_validity_duration": "20m",
		"bcrypt_cost": 8
	}`)

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"app", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":7070", c.EndpointAddr)
	assert.Equal(t, "postgres://json", c.DatabaseDSN)
	assert.Equal(t, "json-secret", c.SecretKey)
	assert.Equal(t, 20*time.Minute, c.TokenValidityDuration)
	assert.Equal(t, 8, c.BcryptCost)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := writeTempConfig(t, `{"secret_key": "only-secret"}`)

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"app", "-config", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "only-secret", c.SecretKey)
	assert.Equal(t, ":8080", c.EndpointAddr)
	assert.Equal(t, 15*time.Minute, c.TokenValidityDuration)
}

func TestParseJson_NoFlagLoadsNothing(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"app"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "secretKey", c.SecretKey)
}
