package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const usage = `Usage:
    wgvanity offset PUBLIC_KEY PREFIX SKIP LIMIT
    wgvanity add OFFSET

wgvanity searches for an X25519 public key, reachable from PUBLIC_KEY by
adding a small multiple of the base point, whose base64 encoding starts
with PREFIX.

PUBLIC_KEY is a base64-encoded 32-byte Curve25519 public key (as used by
WireGuard). PREFIX is matched against the leading base64 characters of the
candidate public key and may be up to 10 characters (60 bits). SKIP is the
number of candidates to skip before starting (0 to start from PUBLIC_KEY
itself); LIMIT caps the number of candidates tried after the skip, or 0 for
no limit.

On a match, offset prints the decimal offset k to standard output; apply it
to the corresponding private key with the add subcommand, which reads a
base64-encoded private key from standard input and prints the base64-encoded
private key for the matching public key.

Examples:

    $ wgvanity offset <(pubkey)> AAAA 0 0
    attempts: 12345
    seconds: 0.31
    attempts/s: 39823
    12345

    $ echo <private key base64> | wgvanity add 12345
    <vanity private key base64>
`

func must[T any](v T, err error) T {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
	return v
}

// parseDecimalUint64 parses a decimal CLI argument via math/big, the way
// the teacher parses its base64-encoded offset with big.Int, then narrows
// to uint64 (skip/limit/offset never exceed a search budget that fits).
func parseDecimalUint64(s string) (uint64, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return 0, fmt.Errorf("%q is not a decimal integer", s)
	}
	if !n.IsUint64() {
		return 0, fmt.Errorf("%q does not fit in 64 bits", s)
	}
	return n.Uint64(), nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(exitUsage)
	}

	switch os.Args[1] {
	case "offset":
		runOffset(os.Args[2:])
	case "add":
		runAdd(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(exitUsage)
	}
}

func runOffset(args []string) {
	if len(args) != 4 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(exitUsage)
	}

	publicKey := must(decodeKey(args[0]))
	prefix := args[1]
	skip := must(parseDecimalUint64(args[2]))
	limit := must(parseDecimalUint64(args[3]))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	start := time.Now()
	attempts, found, err := search(ctx, publicKey, prefix, skip, limit)
	elapsed := time.Since(start)

	fmt.Fprintf(os.Stderr, "attempts: %d\n", attempts)
	fmt.Fprintf(os.Stderr, "seconds: %.2f\n", elapsed.Seconds())
	if elapsed.Seconds() > 0 {
		fmt.Fprintf(os.Stderr, "attempts/s: %.0f\n", float64(attempts)/elapsed.Seconds())
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
	if !found {
		// Limit exhausted with no match: success exit, nothing on stdout
		// (spec §7 ErrLimitExhausted, §8 scenario 6).
		os.Exit(exitSuccess)
	}

	fmt.Println(skip + attempts)
}

func runAdd(args []string) {
	if len(args) != 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(exitUsage)
	}

	offset := must(parseDecimalUint64(args[0]))
	privateKey := must(readKeyFromStdin(os.Stdin))

	vanityPrivateKey, err := reconstruct(privateKey, offset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}

	fmt.Println(encodeKey(vanityPrivateKey))
}
