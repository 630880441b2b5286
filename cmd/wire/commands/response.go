package commands

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brickingsoft/wire/pkg/bytebuffers"
	"github.com/brickingsoft/wire/pkg/http1"
)

var (
	responseVersion     string
	responseStatus      int
	responseReason      string
	responseHeaders     []string
	responseTrailers    []string
	responseBody        []string
	responseLength      bool
	responseKeepAlive   bool
	responseContentType string
	responseServer      string
)

var responseCmd = &cobra.Command{
	Use:   "response",
	Short: "Encode an HTTP/1 response and print it",
	Long: `Encode one HTTP/1 response.

Body framing follows the status, the version and the headers given: without --length an
HTTP/1.1 body is chunked and an HTTP/1.0 body is delimited by closing the connection.
Each --body is written as a separate piece (one chunk when chunked).`,
	Example: `  wire response --status 200 --body hello --body world
  wire response --version HTTP/1.0 --status 200 --length --body hello
  wire response --status 204 --header "x-id: 1"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := http1.ParseVersion(responseVersion)
		if err != nil {
			return err
		}
		headers, err := parseHeaders(responseHeaders)
		if err != nil {
			return err
		}
		trailers, err := parseHeaders(responseTrailers)
		if err != nil {
			return err
		}
		encoder, err := http1.NewResponseEncoder(
			http1.WithKeepAlive(responseKeepAlive),
			http1.WithDefaultContentType(responseContentType),
			http1.WithServer(responseServer),
		)
		if err != nil {
			return err
		}

		contentLength := int64(-1)
		if responseLength {
			contentLength = 0
			for _, piece := range responseBody {
				contentLength += int64(len(piece))
			}
		}
		head := http1.ResponseHead{
			Version: version,
			Status:  responseStatus,
			Reason:  responseReason,
			Headers: headers,
		}
		componentLogger("http1", "head").WithField(
			"framing", http1.DecideFraming(head.Status, head.Version, head.Headers),
		).Debug("framing decided")

		buf := bytebuffers.Get()
		defer bytebuffers.Put(buf)
		if err = encoder.EncodeHead(buf, head, contentLength); err != nil {
			return err
		}
		if head.Status < 200 {
			// interim response, the encoder waits for the final head
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		for _, piece := range responseBody {
			if err = encoder.EncodeBodyString(buf, piece); err != nil {
				return err
			}
		}
		if err = encoder.EncodeEnd(buf, trailers); err != nil {
			return err
		}
		componentLogger("http1", "end").WithFields(logrus.Fields{
			"chunked":    encoder.Chunked(),
			"keep-alive": encoder.KeepAlive(),
			"size":       buf.Len(),
		}).Debug("response encoded")

		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	},
}

func init() {
	responseCmd.Flags().StringVar(&responseVersion, "version", "HTTP/1.1", "protocol version")
	responseCmd.Flags().IntVar(&responseStatus, "status", 200, "status code")
	responseCmd.Flags().StringVar(&responseReason, "reason", "", "reason phrase, defaults to the standard text of the status")
	responseCmd.Flags().StringArrayVar(&responseHeaders, "header", nil, `header as "name: value", repeatable`)
	responseCmd.Flags().StringArrayVar(&responseTrailers, "trailer", nil, `trailer as "name: value", repeatable`)
	responseCmd.Flags().StringArrayVar(&responseBody, "body", nil, "body piece, repeatable")
	responseCmd.Flags().BoolVar(&responseLength, "length", false, "announce the body length with content-length")
	responseCmd.Flags().BoolVar(&responseKeepAlive, "keep-alive", true, "keep the connection open after the response")
	responseCmd.Flags().StringVar(&responseContentType, "content-type", "", "default content-type")
	responseCmd.Flags().StringVar(&responseServer, "server", "", "server header")
	rootCmd.AddCommand(responseCmd)
}

func parseHeaders(values []string) (headers http1.Headers, err error) {
	for _, value := range values {
		name, v, ok := strings.Cut(value, ":")
		if !ok {
			err = fmt.Errorf("invalid header %q, expected \"name: value\"", value)
			return
		}
		headers.Add(strings.TrimSpace(name), strings.TrimSpace(v))
	}
	return
}
