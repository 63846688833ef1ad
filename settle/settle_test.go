package settle

import (
	"testing"

	"github.com/bsv-blockchain/go-sdk/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentrollorg/librentroll-go/shares"
)

func makeAddr(seed byte) shares.Address {
	var addr shares.Address
	for i := range addr {
		addr[i] = seed
	}
	return addr
}

func makeTxID(seed byte) []byte {
	id := make([]byte, 32)
	for i := range id {
		id[i] = seed
	}
	return id
}

// --- MemPayer ---

func TestMemPayer_PayBatch(t *testing.T) {
	p := NewMemPayer()
	alice, bob := makeAddr(0xAA), makeAddr(0xBB)

	err := p.PayBatch([]Payment{
		{To: alice, Amount: 75},
		{To: bob, Amount: 45},
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(75), p.Balance(alice))
	assert.Equal(t, uint64(45), p.Balance(bob))

	// Second batch accumulates.
	require.NoError(t, p.PayBatch([]Payment{{To: alice, Amount: 25}}))
	assert.Equal(t, uint64(100), p.Balance(alice))
}

func TestMemPayer_Rejections(t *testing.T) {
	p := NewMemPayer()
	alice := makeAddr(0xAA)

	tests := []struct {
		name     string
		payments []Payment
		wantErr  error
	}{
		{"empty batch", nil, ErrEmptyBatch},
		{"zero recipient", []Payment{{To: shares.Address{}, Amount: 10}}, ErrZeroRecipient},
		{"zero amount", []Payment{{To: alice, Amount: 0}}, ErrZeroAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, p.PayBatch(tt.payments), tt.wantErr)
		})
	}
}

func TestMemPayer_AtomicFailure(t *testing.T) {
	p := NewMemPayer()
	alice, bob := makeAddr(0xAA), makeAddr(0xBB)
	p.FailAddress(bob)

	err := p.PayBatch([]Payment{
		{To: alice, Amount: 75},
		{To: bob, Amount: 45},
	})
	require.ErrorIs(t, err, ErrPaymentRejected)

	// Nothing was credited, not even the payment before the failure.
	assert.Zero(t, p.Balance(alice))
	assert.Zero(t, p.Balance(bob))
}

// --- BuildPayoutTx ---

func TestBuildPayoutTx(t *testing.T) {
	payments := []Payment{
		{To: makeAddr(0xAA), Amount: 75_000},
		{To: makeAddr(0xBB), Amount: 45_000},
		{To: makeAddr(0xCC), Amount: 30_000},
	}
	funding := []*UTXO{{TxID: makeTxID(0x01), Vout: 0, Amount: 200_000}}

	ptx, err := BuildPayoutTx(payments, funding, makeAddr(0xDD), 0)
	require.NoError(t, err)
	require.NotEmpty(t, ptx.RawTx)

	sdkTx, err := transaction.NewTransactionFromBytes(ptx.RawTx)
	require.NoError(t, err)
	require.Len(t, sdkTx.Inputs, 1)
	// 3 payouts + change.
	require.Len(t, sdkTx.Outputs, 4)

	for i, pay := range payments {
		assert.Equal(t, pay.Amount, sdkTx.Outputs[i].Satoshis)
		assert.True(t, sdkTx.Outputs[i].LockingScript.IsP2PKH())
		pkh, err := sdkTx.Outputs[i].LockingScript.PublicKeyHash()
		require.NoError(t, err)
		assert.Equal(t, pay.To[:], pkh)
	}

	// Change = available - payouts - fee.
	wantChange := uint64(200_000) - 150_000 - ptx.Fee
	assert.Equal(t, wantChange, ptx.Change)
	assert.Equal(t, wantChange, sdkTx.Outputs[3].Satoshis)
}

func TestBuildPayoutTx_DustChangeSuppressed(t *testing.T) {
	payments := []Payment{{To: makeAddr(0xAA), Amount: 10_000}}
	// Funding leaves less than dust after payout and fee.
	funding := []*UTXO{{TxID: makeTxID(0x01), Vout: 0, Amount: 10_300}}

	ptx, err := BuildPayoutTx(payments, funding, makeAddr(0xDD), 0)
	require.NoError(t, err)
	assert.Zero(t, ptx.Change)

	sdkTx, err := transaction.NewTransactionFromBytes(ptx.RawTx)
	require.NoError(t, err)
	assert.Len(t, sdkTx.Outputs, 1)
}

func TestBuildPayoutTx_Rejections(t *testing.T) {
	good := []Payment{{To: makeAddr(0xAA), Amount: 10_000}}
	fund := []*UTXO{{TxID: makeTxID(0x01), Vout: 0, Amount: 50_000}}

	tests := []struct {
		name     string
		payments []Payment
		funding  []*UTXO
		wantErr  error
	}{
		{"no payments", nil, fund, ErrEmptyBatch},
		{"no funding", good, nil, ErrNilParam},
		{"nil funding entry", good, []*UTXO{nil}, ErrNilParam},
		{"short txid", good, []*UTXO{{TxID: []byte{0x01}, Amount: 50_000}}, ErrNilParam},
		{"zero recipient", []Payment{{Amount: 10}}, fund, ErrZeroRecipient},
		{"zero amount", []Payment{{To: makeAddr(0xAA)}}, fund, ErrZeroAmount},
		{"underfunded", []Payment{{To: makeAddr(0xAA), Amount: 60_000}}, fund, ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildPayoutTx(tt.payments, tt.funding, shares.Address{}, 0)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
