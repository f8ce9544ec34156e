//go:build tools
// +build tools

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github/chapool/evm-gateway/cmd/chains"
	"github/chapool/evm-gateway/internal/config"
	"github/chapool/evm-gateway/internal/gateway/balance"
)

func main() {
	var (
		txHash     = flag.String("tx", "", "Transaction hash returned by /blockchain/send")
		ticker     = flag.String("currency", "Eth", "Ticker of the chain the transaction was sent on")
		chainsFile = flag.String("chains", "", "Chains file (default: GATEWAY_CHAINS_FILE)")
	)
	flag.Parse()

	if *txHash == "" {
		fmt.Println("Error: transaction hash is required")
		flag.Usage()
		os.Exit(1)
	}

	if *chainsFile == "" {
		*chainsFile = config.DefaultServiceConfigFromEnv().Gateway.ChainsFile
	}

	ctx := context.Background()

	currency, chainConfig, err := chains.Resolve(ctx, *chainsFile, *ticker)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Connect to RPC
	client, err := ethclient.Dial(chainConfig.NodeURL)
	if err != nil {
		fmt.Printf("Error connecting to RPC: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	hash := common.HexToHash(*txHash)
	tx, isPending, err := client.TransactionByHash(ctx, hash)
	if err != nil {
		fmt.Printf("Error getting transaction: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Transaction Hash: %s\n", hash.Hex())
	fmt.Printf("Currency: %s (%s)\n", currency, chainConfig.NodeURL)
	fmt.Printf("Type: %d\n", tx.Type())
	fmt.Printf("Nonce: %d\n", tx.Nonce())

	from, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
	if err != nil {
		fmt.Printf("Error getting sender: %v\n", err)
	} else {
		fmt.Printf("From: %s\n", from.Hex())
	}

	if to := tx.To(); to != nil {
		fmt.Printf("To: %s\n", to.Hex())
	} else {
		fmt.Println("To: Contract Creation")
	}

	value := balance.ToUnits(tx.Value(), currency.Decimals())
	fmt.Printf("Value: %s wei (%s %s)\n", tx.Value().String(), value.String(), chainConfig.Denom)
	fmt.Println()

	if isPending {
		fmt.Println("Transaction is still pending")
		return
	}

	receipt, err := client.TransactionReceipt(ctx, hash)
	if err != nil {
		fmt.Printf("Error getting receipt: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Block Number: %s\n", receipt.BlockNumber.String())
	fmt.Printf("Block Hash: %s\n", receipt.BlockHash.Hex())
	fmt.Printf("Gas Used: %d\n", receipt.GasUsed)

	if receipt.Status == types.ReceiptStatusSuccessful {
		fmt.Println("Status: success")
	} else {
		fmt.Println("Status: failed")
		os.Exit(1)
	}
}
