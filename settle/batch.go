package settle

import (
	"fmt"

	"github.com/bsv-blockchain/go-sdk/chainhash"
	"github.com/bsv-blockchain/go-sdk/script"
	"github.com/bsv-blockchain/go-sdk/transaction"
	"github.com/bsv-blockchain/go-sdk/transaction/template/p2pkh"

	"github.com/rentrollorg/librentroll-go/shares"
)

const (
	// DustLimit is the minimum satoshi amount for a standard output.
	DustLimit = uint64(546)

	// DefaultFeeRate is the default fee rate in sat/KB.
	DefaultFeeRate = uint64(1)

	txIDLen = 32
)

// UTXO is an unspent output funding a payout transaction.
type UTXO struct {
	TxID   []byte `json:"txid"` // 32 bytes
	Vout   uint32 `json:"vout"`
	Amount uint64 `json:"amount"` // satoshis
}

// PayoutTx is an unsigned payout transaction built from a settlement
// batch. Payment i corresponds to output i; the change output, when
// present, comes last.
type PayoutTx struct {
	RawTx  []byte // serialized unsigned transaction
	Fee    uint64 // estimated fee reserved from the funding inputs
	Change uint64 // change amount (0 if below dust)
}

// EstimateFee estimates the fee for a transaction of the given size.
// Returns ceil(txSizeBytes * feeRate / 1000).
func EstimateFee(txSizeBytes int, feeRate uint64) uint64 {
	if feeRate == 0 {
		feeRate = DefaultFeeRate
	}
	fee := uint64(txSizeBytes) * feeRate
	return (fee + 999) / 1000
}

// estimateTxSize roughly sizes a P2PKH-only transaction.
// Per input: prevhash(32) + previndex(4) + scriptlen(1) + script(~107) + sequence(4) = 148.
// Per output: value(8) + scriptlen(1) + script(25) = 34.
func estimateTxSize(numInputs, numOutputs int) int {
	return 10 + numInputs*148 + numOutputs*34
}

// BuildPayoutTx builds an unsigned transaction paying one P2PKH output
// per payment, funded by the given UTXOs, with change to changeAddr.
// Callers settling on-chain sign and broadcast the result; the single
// transaction gives the batch its all-or-nothing property.
func BuildPayoutTx(payments []Payment, funding []*UTXO, changeAddr shares.Address, feeRate uint64) (*PayoutTx, error) {
	if len(payments) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(funding) == 0 {
		return nil, fmt.Errorf("%w: funding inputs", ErrNilParam)
	}

	var totalPayout uint64
	for i, pay := range payments {
		if pay.To.IsZero() {
			return nil, fmt.Errorf("%w: payment %d", ErrZeroRecipient, i)
		}
		if pay.Amount == 0 {
			return nil, fmt.Errorf("%w: payment %d", ErrZeroAmount, i)
		}
		totalPayout += pay.Amount
	}

	var totalAvailable uint64
	for i, fi := range funding {
		if fi == nil {
			return nil, fmt.Errorf("%w: funding[%d]", ErrNilParam, i)
		}
		if len(fi.TxID) != txIDLen {
			return nil, fmt.Errorf("%w: funding[%d] TxID must be %d bytes", ErrNilParam, i, txIDLen)
		}
		totalAvailable += fi.Amount
	}

	estSize := estimateTxSize(len(funding), len(payments)+1)
	estFee := EstimateFee(estSize, feeRate)
	totalNeeded := totalPayout + estFee
	if totalAvailable < totalNeeded {
		return nil, fmt.Errorf("%w: need %d sat, have %d sat",
			ErrInsufficientFunds, totalNeeded, totalAvailable)
	}

	sdkTx := transaction.NewTransaction()

	for _, fi := range funding {
		srcHash, err := chainhash.NewHash(fi.TxID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid funding TxID: %w", ErrScriptBuild, err)
		}
		sdkTx.AddInput(&transaction.TransactionInput{
			SourceTXID:       srcHash,
			SourceTxOutIndex: fi.Vout,
			SequenceNumber:   transaction.DefaultSequenceNumber,
		})
	}

	for i, pay := range payments {
		lockScript, err := lockingScriptForAddress(pay.To)
		if err != nil {
			return nil, fmt.Errorf("payment %d: %w", i, err)
		}
		sdkTx.Outputs = append(sdkTx.Outputs, &transaction.TransactionOutput{
			Satoshis:      pay.Amount,
			LockingScript: lockScript,
		})
	}

	// Change output, suppressed when at or below dust.
	changeAmount := totalAvailable - totalPayout - estFee
	if changeAmount > DustLimit && !changeAddr.IsZero() {
		changeScript, err := lockingScriptForAddress(changeAddr)
		if err != nil {
			return nil, fmt.Errorf("change: %w", err)
		}
		sdkTx.Outputs = append(sdkTx.Outputs, &transaction.TransactionOutput{
			Satoshis:      changeAmount,
			LockingScript: changeScript,
		})
	} else {
		changeAmount = 0
	}

	return &PayoutTx{
		RawTx:  sdkTx.Bytes(),
		Fee:    estFee,
		Change: changeAmount,
	}, nil
}

// lockingScriptForAddress builds a P2PKH locking script for a 20-byte
// address hash.
func lockingScriptForAddress(addr shares.Address) (*script.Script, error) {
	sdkAddr, err := script.NewAddressFromPublicKeyHash(addr[:], true)
	if err != nil {
		return nil, fmt.Errorf("%w: address from hash: %w", ErrScriptBuild, err)
	}
	lockScript, err := p2pkh.Lock(sdkAddr)
	if err != nil {
		return nil, fmt.Errorf("%w: P2PKH lock: %w", ErrScriptBuild, err)
	}
	return lockScript, nil
}
