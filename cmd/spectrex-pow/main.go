package main

import (
	"os"

	"git.gammaspectra.live/P2Pool/spectrex/utils"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		utils.Fatalf("CLI", "%s", err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "spectrex-pow"
	app.Usage = "compute and inspect proof-of-work digests"
	app.Version = version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "log-level, l",
			Value: "info",
			Usage: " log `LEVEL` [none|error|info|notice|debug]",
		},
	}

	jobFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "job, j",
			Usage: " read the job from a JSON `FILE`",
		},
		cli.StringFlag{
			Name:  "hash",
			Value: defaultPrePowHash,
			Usage: " pre-pow hash as 64 hex characters `HEX`",
		},
		cli.Uint64Flag{
			Name:  "timestamp, t",
			Value: 1,
			Usage: " block timestamp `N`",
		},
		cli.StringFlag{
			Name:  "bits, b",
			Usage: " compact share target `BITS`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:   "header",
			Usage:  "keyed pre-pow hash of serialized header bytes",
			Action: runHeader,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "data, d",
					Usage: "*header bytes `HEX`",
				},
			},
		},
		{
			Name:   "bits",
			Usage:  "target and difficulty of compact bits",
			Action: runBits,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "bits, b",
					Value: "0x1d00ffff",
					Usage: "*compact target `BITS`",
				},
			},
		},
		{
			Name:   "sponge",
			Usage:  "first sponge stage of the pipeline only",
			Action: runSponge,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash",
					Value: defaultPrePowHash,
					Usage: " pre-pow hash as 64 hex characters `HEX`",
				},
				cli.Uint64Flag{
					Name:  "timestamp, t",
					Value: 1,
					Usage: " block timestamp `N`",
				},
				cli.Uint64Flag{
					Name:  "nonce, n",
					Value: 1,
					Usage: " nonce `N`",
				},
			},
		},
		{
			Name:   "calculate",
			Usage:  "full proof-of-work value for one nonce",
			Action: runCalculate,
			Flags: append([]cli.Flag{
				cli.Uint64Flag{
					Name:  "nonce, n",
					Value: 1,
					Usage: " nonce `N`",
				},
			}, jobFlags...),
		},
		{
			Name:   "sweep",
			Usage:  "evaluate a nonce range across threads and report the hash rate",
			Action: runSweep,
			Flags: append([]cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Usage: " first nonce `N`",
				},
				cli.Uint64Flag{
					Name:  "count, c",
					Value: 1 << 16,
					Usage: " number of nonces `N`",
				},
				cli.IntFlag{
					Name:  "threads",
					Usage: " worker `COUNT`, 0 for all cores, negative to leave cores idle",
				},
				cli.Uint64Flag{
					Name:  "templates",
					Value: 1,
					Usage: " sweep `N` templates on consecutive timestamps and ids",
				},
			}, jobFlags...),
		},
	}

	app.Before = func(c *cli.Context) error {
		level, err := utils.ParseLogLevel(c.GlobalString("log-level"))
		if err != nil {
			return err
		}
		utils.GlobalLogLevel = level
		return nil
	}

	return app
}
