// tick - canonical backtick escape codec CLI
//
// Usage:
//
//	tick encode [file]    Encode a file (or stdin) as an ASCII-safe string
//	tick decode [file]    Decode a tick-encoded string (or stdin)
//	tick version          Print version info
//
// With --zstd, encode compresses the payload before escaping and decode
// decompresses it after unescaping, for embedding compressed binary
// blobs in text containers.
//
// If no file is given, reads from stdin.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tickenc/tickenc/tick"
)

const version = "0.1.0"

var (
	outPath string
	useZstd bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:          "tick",
	Short:        "encode binary data as ASCII-safe tick-encoded strings",
	Long:         "tick maps arbitrary binary data to a canonical ASCII-safe string\nrepresentation and back, leaving printable ASCII unchanged and\nbacktick-escaping everything else.",
	SilenceUsage: true,
}

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode a file (or stdin) as a tick-encoded string",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a tick-encoded string (or stdin) back to raw bytes",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDecode,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version info",
	Run: func(*cobra.Command, []string) {
		fmt.Printf("tick %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outPath, "out", "o", "", "output file path (default stdout)")
	rootCmd.PersistentFlags().BoolVar(&useZstd, "zstd", false, "zstd-compress payloads under the encoding")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug detail")
	rootCmd.AddCommand(encodeCmd, decodeCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func writeOutput(data []byte) error {
	if outPath == "" || outPath == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}

func runEncode(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	raw, err := readInput(args)
	if err != nil {
		return err
	}
	if useZstd {
		raw, err = compress(raw)
		if err != nil {
			return fmt.Errorf("zstd compress: %w", err)
		}
	}
	encoded := tick.Encode(raw)
	logger.Debug("encoded payload",
		zap.Int("raw_bytes", len(raw)),
		zap.Int("encoded_bytes", len(encoded)))
	return writeOutput(encoded)
}

func runDecode(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	encoded, err := readInput(args)
	if err != nil {
		return err
	}
	raw, err := tick.Decode(encoded)
	if err != nil {
		var derr *tick.DecodeError
		if errors.As(err, &derr) {
			logger.Error("malformed input",
				zap.String("kind", derr.Kind.String()),
				zap.Int("offset", derr.Offset))
		}
		return err
	}
	if useZstd {
		raw, err = decompress(raw)
		if err != nil {
			return fmt.Errorf("zstd decompress: %w", err)
		}
	}
	logger.Debug("decoded payload",
		zap.Int("encoded_bytes", len(encoded)),
		zap.Int("raw_bytes", len(raw)))
	return writeOutput(raw)
}

func compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

func decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}
