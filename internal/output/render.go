// Package output renders decoded headers, storage values and proofs for
// the terminal.
package output

import (
	"fmt"
	"math/big"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/dmagro/eth-proof-client/internal/hexutil"
	"github.com/dmagro/eth-proof-client/internal/proof"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

// word32 renders a value as a full 32-byte word, the natural display form
// for hashes and roots (EncodeQuantity would drop their leading zeros).
func word32(v *big.Int) string {
	return fmt.Sprintf("0x%064x", v)
}

// bloom renders the 256-byte logs bloom truncated to its leading bytes;
// the full 512 hex digits are too wide for a table row.
func bloom(v *big.Int) string {
	return fmt.Sprintf("0x%0512x", v)[:34] + "..."
}

// RenderHeader prints one decoded block header.
func RenderHeader(endpoint string, h *proof.BlockHeader) {
	fmt.Printf("\n%s %s\n\n", bold(fmt.Sprintf("Block #%s", h.Number)), cyan("["+endpoint+"]"))

	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	tbl := table.New("Field", "Value")
	tbl.WithHeaderFormatter(headerFmt)

	tbl.AddRow("parentHash", word32(h.ParentHash))
	tbl.AddRow("sha3Uncles", word32(h.Sha3Uncles))
	tbl.AddRow("miner", hexutil.EncodeAddress(h.Miner))
	tbl.AddRow("stateRoot", word32(h.StateRoot))
	tbl.AddRow("transactionsRoot", word32(h.TransactionsRoot))
	tbl.AddRow("receiptsRoot", word32(h.ReceiptsRoot))
	tbl.AddRow("logsBloom", bloom(h.LogsBloom))
	tbl.AddRow("difficulty", h.Difficulty)
	tbl.AddRow("gasLimit", h.GasLimit)
	tbl.AddRow("gasUsed", h.GasUsed)
	tbl.AddRow("timestamp", h.Timestamp)
	tbl.AddRow("extraData", hexutil.EncodeBytes(h.ExtraData))
	tbl.AddRow("mixHash", word32(h.MixHash))
	tbl.AddRow("nonce", hexutil.EncodeQuantity(h.Nonce))
	tbl.Print()
	fmt.Println()
}

// RenderStorage prints one decoded storage slot.
func RenderStorage(endpoint string, address, position, value *big.Int) {
	fmt.Printf("\n%s %s\n", bold("Storage slot"), cyan("["+endpoint+"]"))
	fmt.Printf("  Address:  %s\n", hexutil.EncodeAddress(address))
	fmt.Printf("  Position: %s\n", hexutil.EncodeQuantity(position))
	fmt.Printf("  Value:    %s (%s)\n\n", green(word32(value)), value)
}

// RenderProof prints a decoded eth_getProof result, one row per storage
// slot, with node counts rather than raw node bytes. The header supplies
// the block number and the state root the proof is anchored to.
func RenderProof(endpoint string, address *big.Int, h *proof.BlockHeader, res *proof.AccountResult) {
	fmt.Printf("\n%s %s\n", bold("Account proof"), cyan("["+endpoint+"]"))
	fmt.Printf("  Address:       %s\n", hexutil.EncodeAddress(address))
	fmt.Printf("  Block:         %s\n", h.Number)
	fmt.Printf("  State root:    %s\n", word32(h.StateRoot))
	fmt.Printf("  Account nodes: %s\n\n", green(fmt.Sprintf("%d", len(res.AccountProof))))

	if len(res.StorageProof) == 0 {
		return
	}

	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	tbl := table.New("Key", "Value", "Nodes")
	tbl.WithHeaderFormatter(headerFmt)
	for _, entry := range res.StorageProof {
		tbl.AddRow(
			hexutil.EncodeQuantity(entry.Key),
			hexutil.EncodeQuantity(entry.Value),
			len(entry.Proof),
		)
	}
	tbl.Print()
	fmt.Println()
}
