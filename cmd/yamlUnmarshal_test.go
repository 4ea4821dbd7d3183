package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestYAMLUnmarshal_Success(t *testing.T) {
	var e remoteEntry
	err := yamlUnmarshal([]byte("host: h\nport: 22\nuser: u\n"), &e)
	require.NoError(t, err)
	require.Equal(t, "h", e.Host)
}

func TestYAMLUnmarshal_Errors(t *testing.T) {
	var e remoteEntry
	err := yamlUnmarshal([]byte("port: notanumber\n"), &e)
	require.Error(t, err)
	require.Contains(t, err.Error(), "yaml unmarshal")
}
