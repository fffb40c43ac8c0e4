package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "k"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/test"}},
	}
}

func TestBuild_MergePriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{TokenSignKey: "from-env"},
			Storage: Storage{DB: DB{DSN: "postgres://env"}},
		},
		&StructuredConfig{
			App:    App{TokenSignKey: "from-flags", TokenIssuer: "flag-issuer"},
			Server: Server{HTTPAddress: "localhost:9000"},
		},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.TokenSignKey, "earlier sources win for non-zero fields")
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer, "later sources fill gaps")
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
}

func TestValidate_AppliesDefaults(t *testing.T) {
	cfg := validConfig()

	require.NoError(t, cfg.validate())

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultMediaDir, cfg.Storage.Media.Dir)
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""

	require.ErrorIs(t, cfg.validate(), ErrNoDatabaseDSN)
}

func TestValidate_MissingSignKey(t *testing.T) {
	cfg := validConfig()
	cfg.App.TokenSignKey = ""

	require.ErrorIs(t, cfg.validate(), ErrNoTokenSignKey)
}

func TestNetAddress_SetAndString(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:8080"))
	assert.Equal(t, "localhost:8080", a.String())

	require.Error(t, a.Set("no-port"))
	require.Error(t, a.Set("localhost:0"))
	require.Error(t, a.Set("not-an-ip:80"))
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"90s"`)))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))

	require.Error(t, d.UnmarshalJSON([]byte(`"not-a-duration"`)))
	require.Error(t, d.UnmarshalJSON([]byte(`true`)))
}
