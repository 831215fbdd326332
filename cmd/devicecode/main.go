// Command devicecode reads a device descriptor as JSON from stdin and prints
// the encrypted device code on a single line.
//
//	echo '{"brand":"Apple","model":"iPhone 13","system":"iOS 17.0","platform":"ios"}' | devicecode
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/darkit/devicecode"
)

func main() {
	log := newLogger(os.Stderr)
	app := newApp(os.Stdin, os.Stdout, log)
	if err := app.Run(context.Background(), os.Args); err != nil {
		log.WithError(err).Fatal("devicecode failed")
	}
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logrus.WarnLevel)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return log
}

func newApp(stdin io.Reader, stdout io.Writer, log *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "devicecode",
		Usage: "generate an encrypted device code from a device descriptor on stdin",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "open-id",
				Usage: "value appended after the oid segment",
				Value: devicecode.DefaultOpenID,
			},
			&cli.BoolFlag{
				Name:  "host",
				Usage: "describe the local host instead of reading stdin",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log diagnostics to stderr",
			},
			&cli.BoolFlag{
				Name:  "plaintext",
				Usage: "log the plaintext before encryption (implies --verbose)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") || cmd.Bool("plaintext") {
				log.SetLevel(logrus.DebugLevel)
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return generate(cmd, stdin, stdout, log)
		},
		Commands: []*cli.Command{
			{
				Name:  "segments",
				Usage: "print the protocol segments recovered from the constant pool",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					g, err := devicecode.New(devicecode.DefaultConfig())
					if err != nil {
						return err
					}
					enc := json.NewEncoder(stdout)
					enc.SetIndent("", "  ")
					return enc.Encode(g.Segments())
				},
			},
		},
	}
}

func generate(cmd *cli.Command, stdin io.Reader, stdout io.Writer, log *logrus.Logger) error {
	entry := log.WithField("trace", uuid.NewString())

	var (
		dev devicecode.Device
		err error
	)
	if cmd.Bool("host") {
		dev, err = devicecode.HostDevice()
	} else {
		dev, err = devicecode.ParseDevice(stdin)
	}
	if err != nil {
		return err
	}
	entry.WithFields(logrus.Fields{
		"brand":    dev.Brand,
		"model":    dev.Model,
		"system":   dev.System,
		"platform": dev.Platform,
	}).Debug("device descriptor loaded")

	cfg := devicecode.DefaultConfig().WithOpenID(cmd.String("open-id"))
	g, err := devicecode.New(cfg)
	if err != nil {
		return err
	}

	res, err := g.FingerprintDetailed(dev)
	if err != nil {
		return err
	}
	entry = entry.WithFields(logrus.Fields{"timestamp": res.Timestamp, "nonce": res.Nonce})
	if cmd.Bool("plaintext") {
		entry = entry.WithField("plaintext", res.Plaintext)
	}
	entry.Debug("device code generated")

	_, err = fmt.Fprintln(stdout, res.Token)
	return err
}
