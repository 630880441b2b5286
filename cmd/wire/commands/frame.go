package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brickingsoft/wire/codec"
	"github.com/brickingsoft/wire/pkg/bytebuffers"
	"github.com/brickingsoft/wire/pkg/bytex"
)

var (
	frameWidth  int
	frameOrder  string
	frameSigned bool
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Length-prefixed framing",
	Long: `Encode and decode length-prefixed frames.

The prefix comes from the config file unless --width, --order or --signed are given.
Frames are printed and read as hex.`,
}

var frameEncodeCmd = &cobra.Command{
	Use:   "encode <payload>...",
	Short: "Frame each payload and print the result as hex",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, err := frameField(cmd)
		if err != nil {
			return err
		}
		log := componentLogger("codec", "encode")

		buf := bytebuffers.Get()
		defer bytebuffers.Put(buf)
		for _, payload := range args {
			if err = codec.WriteMessage(buf, bytex.FromString(payload), field); err != nil {
				return err
			}
			log.WithField("length", len(payload)).Debug("frame written")
		}
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf.Bytes()))
		return nil
	},
}

var frameDecodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Split hex encoded frames and print each payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, err := frameField(cmd)
		if err != nil {
			return err
		}
		buf, err := hexBuffer(args[0])
		if err != nil {
			return err
		}
		log := componentLogger("codec", "decode")

		messages, err := codec.DecodeAll[*bytebuffers.Buffer](buf, codec.NewLengthFieldCodec(field))
		out := cmd.OutOrStdout()
		for i, message := range messages {
			fmt.Fprintf(out, "%d: %q\n", i, bytex.ToString(message.Bytes()))
			_ = message.Release()
		}
		if err != nil {
			return err
		}
		if pending := buf.Len(); pending > 0 {
			log.WithField("pending", pending).Warn("incomplete frame left in buffer")
			fmt.Fprintf(out, "pending: %d bytes\n", pending)
		}
		return nil
	},
}

var framePackCmd = &cobra.Command{
	Use:   "pack <key=value>...",
	Short: "Encode the pairs as one MessagePack map frame",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, err := frameField(cmd)
		if err != nil {
			return err
		}
		message := make(map[string]string, len(args))
		for _, arg := range args {
			key, value, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("invalid pair %q, expected key=value", arg)
			}
			message[key] = value
		}

		buf := bytebuffers.Get()
		defer bytebuffers.Put(buf)
		if err = codec.NewMessagePackCodec[map[string]string](field).Encode(buf, message); err != nil {
			return err
		}
		componentLogger("codec", "pack").WithField("size", buf.Len()).Debug("frame written")
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf.Bytes()))
		return nil
	},
}

var frameUnpackCmd = &cobra.Command{
	Use:   "unpack <hex>",
	Short: "Decode MessagePack map frames",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, err := frameField(cmd)
		if err != nil {
			return err
		}
		buf, err := hexBuffer(args[0])
		if err != nil {
			return err
		}
		messages, err := codec.DecodeAll[map[string]any](buf, codec.NewMessagePackCodec[map[string]any](field))
		out := cmd.OutOrStdout()
		for i, message := range messages {
			fmt.Fprintf(out, "%d: %v\n", i, message)
		}
		if err != nil {
			return err
		}
		if pending := buf.Len(); pending > 0 {
			componentLogger("codec", "unpack").WithField("pending", pending).Warn("incomplete frame left in buffer")
			fmt.Fprintf(out, "pending: %d bytes\n", pending)
		}
		return nil
	},
}

func init() {
	frameCmd.PersistentFlags().IntVar(&frameWidth, "width", 4, "length prefix width in bytes (1-8)")
	frameCmd.PersistentFlags().StringVar(&frameOrder, "order", "big", "length prefix byte order (big, little)")
	frameCmd.PersistentFlags().BoolVar(&frameSigned, "signed", false, "length prefix is a signed integer")

	frameCmd.AddCommand(frameEncodeCmd)
	frameCmd.AddCommand(frameDecodeCmd)
	frameCmd.AddCommand(framePackCmd)
	frameCmd.AddCommand(frameUnpackCmd)
	rootCmd.AddCommand(frameCmd)
}

// frameField merges the config file with the flags set on the command line.
func frameField(cmd *cobra.Command) (codec.LengthField, error) {
	cfg, err := GetConfig()
	if err != nil {
		return codec.LengthField{}, err
	}
	frame := cfg.Frame
	flags := cmd.Flags()
	if flags.Changed("width") {
		frame.Width = frameWidth
	}
	if flags.Changed("order") {
		frame.Order = frameOrder
	}
	if flags.Changed("signed") {
		frame.Signed = frameSigned
	}
	return frame.LengthField()
}

func hexBuffer(s string) (*bytebuffers.Buffer, error) {
	p, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return bytebuffers.NewBufferFromBytes(p), nil
}
