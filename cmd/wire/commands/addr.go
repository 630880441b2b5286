package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brickingsoft/wire/pkg/bytebuffers"
	"github.com/brickingsoft/wire/pkg/sockets"
)

var (
	addrHost    string
	addrNetwork string
	addrPacked  bool
	addrPort    uint16
)

var addrCmd = &cobra.Command{
	Use:   "addr <address>...",
	Short: "Parse socket addresses and print their identity",
	Long: `Parse each argument as "ip:port", "[ipv6]:port", ":port" or a Unix socket path
(starting with '/', '.' or '@'), then print its description, family and hash.

With --packed the argument is a hex encoded 4 or 16 byte network-order IP and --port
gives the port. Addresses that are equal share the same group number.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := componentLogger("sockets", "parse")
		out := cmd.OutOrStdout()
		groups := make(map[sockets.Key]int, len(args))
		for _, arg := range args {
			sa, err := parseSocketAddress(arg)
			if err != nil {
				return err
			}
			if addrHost != "" {
				sa = sa.WithHost(addrHost)
			}
			group, seen := groups[sa.Key()]
			if !seen {
				group = len(groups)
				groups[sa.Key()] = group
			}
			log.WithField("family", sa.Family()).Debug(arg)

			fmt.Fprintf(out, "%s\n", sa)
			fmt.Fprintf(out, "  family: %s\n", sa.Family())
			fmt.Fprintf(out, "  hash:   %016x\n", sa.Hash())
			fmt.Fprintf(out, "  group:  %d\n", group)
			if ip, ok := sa.IPAddress(); ok {
				port, _ := sa.Port()
				fmt.Fprintf(out, "  ip:     %s\n", ip)
				fmt.Fprintf(out, "  port:   %d\n", port)
			}
			if path, ok := sa.Path(); ok {
				fmt.Fprintf(out, "  path:   %s\n", path)
			}
			if addrNetwork != "" {
				netAddr, netErr := sa.NetAddr(addrNetwork)
				if netErr != nil {
					return netErr
				}
				fmt.Fprintf(out, "  net:    %s %s\n", netAddr.Network(), netAddr)
			}
		}
		return nil
	},
}

func init() {
	addrCmd.Flags().StringVar(&addrHost, "host", "", "host name carried as description")
	addrCmd.Flags().StringVar(&addrNetwork, "network", "", "also convert to a net.Addr of this network (tcp, udp, ip, unix)")
	addrCmd.Flags().BoolVar(&addrPacked, "packed", false, "arguments are hex encoded packed IPs")
	addrCmd.Flags().Uint16Var(&addrPort, "port", 0, "port of packed IPs")
	rootCmd.AddCommand(addrCmd)
}

func parseSocketAddress(arg string) (sockets.SocketAddress, error) {
	if addrPacked {
		p, err := hex.DecodeString(arg)
		if err != nil {
			return sockets.SocketAddress{}, fmt.Errorf("invalid hex input: %w", err)
		}
		return sockets.FromPackedBuffer(bytebuffers.NewBufferFromBytes(p), addrPort)
	}
	if strings.HasPrefix(arg, "/") || strings.HasPrefix(arg, ".") || strings.HasPrefix(arg, "@") {
		return sockets.FromUnixPath(arg)
	}
	return sockets.ParseAddrPort(arg)
}
