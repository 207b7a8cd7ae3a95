package rpcparam_test

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/ethunit/rpcparam"
)

const transferABI = `[{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]}]`

func TestParseMethod(t *testing.T) {
	entry := strings.TrimSuffix(strings.TrimPrefix(transferABI, "["), "]")

	m, err := rpcparam.ParseMethod([]byte(entry))
	require.NoError(t, err)
	require.Equal(t, "transfer", m.Name)
	require.Len(t, m.Inputs, 2)

	parsed, err := abi.JSON(strings.NewReader(transferABI))
	require.NoError(t, err)
	require.Equal(t, parsed.Methods["transfer"].Sig, m.Signature())

	_, err = rpcparam.ParseMethod([]byte(`{"inputs":[]}`))
	require.True(t, rpcparam.Error.Has(err))

	_, err = rpcparam.ParseMethod([]byte(`{`))
	require.True(t, rpcparam.Error.Has(err))
}
