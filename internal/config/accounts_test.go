package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAccounts(t *testing.T) {
	tests := []struct {
		name     string
		environ  []string
		expected []Account
	}{
		{
			name:     "Ambiente sem contas - registro vazio",
			environ:  []string{"PATH=/usr/bin", "HOME=/root"},
			expected: []Account{},
		},
		{
			name: "Remove espaços e aspas e descarta vazias",
			environ: []string{
				`FLOWBIZ_API_KEY_Voxcall= "abc123" `,
				`FLOWBIZ_API_KEY_Vazia=   `,
				`FLOWBIZ_API_KEY_Aspas=""`,
				`FLOWBIZ_API_KEY_Simples='xyz'`,
				`OUTRA_VAR=ignorada`,
			},
			expected: []Account{
				{Label: "FLOWBIZ_API_KEY_Simples", APIKey: "xyz"},
				{Label: "FLOWBIZ_API_KEY_Voxcall", APIKey: "abc123"},
			},
		},
		{
			name: "Mantém sinais de igual no valor",
			environ: []string{
				"FLOWBIZ_API_KEY_B=key==",
				"FLOWBIZ_API_KEY_A=k1",
			},
			expected: []Account{
				{Label: "FLOWBIZ_API_KEY_A", APIKey: "k1"},
				{Label: "FLOWBIZ_API_KEY_B", APIKey: "key=="},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := LoadAccounts(tt.environ)

			assert.Equal(t, len(tt.expected), registry.Len())
			assert.Equal(t, tt.expected, registry.Accounts())
		})
	}
}

func TestAccountRegistry_Key(t *testing.T) {
	registry := NewAccountRegistry(
		Account{Label: "FLOWBIZ_API_KEY_Voxcall", APIKey: "k-vox"},
		Account{Label: "FLOWBIZ_API_KEY_Outra", APIKey: "k-outra"},
	)

	key, ok := registry.Key("Voxcall")
	require.True(t, ok)
	assert.Equal(t, "k-vox", key)

	key, ok = registry.Key("FLOWBIZ_API_KEY_Outra")
	require.True(t, ok)
	assert.Equal(t, "k-outra", key)

	_, ok = registry.Key("Inexistente")
	assert.False(t, ok)
}

func TestAccount_DisplayName(t *testing.T) {
	assert.Equal(t, "Voxcall", Account{Label: "FLOWBIZ_API_KEY_Voxcall"}.DisplayName())
}

func TestNilRegistry(t *testing.T) {
	var registry *AccountRegistry

	assert.Equal(t, 0, registry.Len())
	assert.Empty(t, registry.Accounts())
	_, ok := registry.Key("Voxcall")
	assert.False(t, ok)
}

func TestConfig_DefaultAPIKey(t *testing.T) {
	cfg := &Config{
		Flowbiz:  Flowbiz{DefaultAccount: "Voxcall"},
		Accounts: NewAccountRegistry(Account{Label: "FLOWBIZ_API_KEY_Voxcall", APIKey: "k"}),
	}

	key, err := cfg.DefaultAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "k", key)

	cfg.Flowbiz.DefaultAccount = "Outra"
	_, err = cfg.DefaultAPIKey()
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestFlowbiz_ShouldAppendMethodPath(t *testing.T) {
	for value, expected := range map[string]bool{
		"1": true, "TRUE": true, " yes ": true, "false": false, "": false, "no": false,
	} {
		assert.Equal(t, expected, Flowbiz{AppendMethodPath: value}.ShouldAppendMethodPath(), value)
	}
}
