package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey      = "API_PORT"
	ethNodeEnvKey      = "ETH_NODE_URL"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	jwtSecretEnvKey    = "JWT_SECRET"
	contractAddrEnvKey = "CONTRACT_ADDRESS"
	signerKeyEnvKey    = "SIGNER_PRIVATE_KEY"
	chainIDEnvKey      = "CHAIN_ID"
	tokenDecimalsKey   = "TOKEN_DECIMALS"
	pollIntervalKey    = "POLL_INTERVAL_SECONDS"
	domainNameEnvKey   = "EIP712_DOMAIN_NAME"
	domainVerEnvKey    = "EIP712_DOMAIN_VERSION"
)

const (
	defaultTokenDecimals = 18
	defaultPollInterval  = 10 * time.Second
	defaultDomainName    = "TokenClaim"
	defaultDomainVersion = "1"
)

// Chain holds the on-chain integration settings. The section is optional:
// when Enabled is false the watcher and the claim issuer construct in
// disabled mode and the rest of the application keeps running.
type Chain struct {
	Enabled         bool
	ContractAddress string
	SignerKeyHex    string
	ChainID         int64
	TokenDecimals   int32
	PollInterval    time.Duration
	DomainName      string
	DomainVersion   string
}

type App struct {
	Port            string
	NodeURL         string
	DBConnectionURL string
	JWTSecret       string
	Chain           Chain
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	chain, err := newChain()
	if err != nil {
		return App{}, fmt.Errorf("chain config: %w", err)
	}

	return App{
		Port:            port,
		NodeURL:         nodeURL,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		Chain:           chain,
	}, nil
}

func newChain() (Chain, error) {
	contractAddr, hasContract := os.LookupEnv(contractAddrEnvKey)
	signerKey, hasSigner := os.LookupEnv(signerKeyEnvKey)

	// missing contract or signer disables the chain-facing components
	// only, the rest of the application keeps serving
	if !hasContract || !hasSigner {
		return Chain{Enabled: false}, nil
	}

	chainIDStr, ok := os.LookupEnv(chainIDEnvKey)
	if !ok {
		return Chain{}, fmt.Errorf("%w: %s", errEnvVarNotFound, chainIDEnvKey)
	}
	chainID, err := strconv.ParseInt(chainIDStr, 10, 64)
	if err != nil {
		return Chain{}, fmt.Errorf("parse %s: %w", chainIDEnvKey, err)
	}

	decimals := int32(defaultTokenDecimals)
	if decStr, ok := os.LookupEnv(tokenDecimalsKey); ok {
		dec, err := strconv.ParseInt(decStr, 10, 32)
		if err != nil {
			return Chain{}, fmt.Errorf("parse %s: %w", tokenDecimalsKey, err)
		}
		decimals = int32(dec)
	}

	pollInterval := defaultPollInterval
	if secStr, ok := os.LookupEnv(pollIntervalKey); ok {
		sec, err := strconv.ParseInt(secStr, 10, 64)
		if err != nil {
			return Chain{}, fmt.Errorf("parse %s: %w", pollIntervalKey, err)
		}
		pollInterval = time.Duration(sec) * time.Second
	}

	domainName := defaultDomainName
	if v, ok := os.LookupEnv(domainNameEnvKey); ok {
		domainName = v
	}

	domainVersion := defaultDomainVersion
	if v, ok := os.LookupEnv(domainVerEnvKey); ok {
		domainVersion = v
	}

	return Chain{
		Enabled:         true,
		ContractAddress: contractAddr,
		SignerKeyHex:    signerKey,
		ChainID:         chainID,
		TokenDecimals:   decimals,
		PollInterval:    pollInterval,
		DomainName:      domainName,
		DomainVersion:   domainVersion,
	}, nil
}
