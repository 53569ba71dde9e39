package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/auth"
	"github.com/robalobadob/wordle/apps/solver/internal/bench"
	"github.com/robalobadob/wordle/apps/solver/internal/cli"
	"github.com/robalobadob/wordle/apps/solver/internal/db"
	"github.com/robalobadob/wordle/apps/solver/internal/history"
	"github.com/robalobadob/wordle/apps/solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

const usage = `usage: solver [play|serve|bench] [flags]

  play   interactive solver on stdin/stdout (default)
  serve  JSON API over HTTP
  bench  play every dictionary word against the solver and report

Run "solver <command> -h" for the flags of a command.
`

// common flags shared by every subcommand.
type common struct {
	dictionary string
	logLevel   string
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.dictionary, "dictionary", "", "path to a word list, one word per line (default: embedded list, or $"+words.EnvDictionaryFile+")")
	fs.StringVar(&c.logLevel, "log-level", "", "zerolog level (default: $LOG_LEVEL, else warn for play and info otherwise)")
}

// setup applies the log level and loads the dictionary.
func (c *common) setup(defaultLevel string) words.Dictionary {
	lvl := c.logLevel
	if lvl == "" {
		lvl = getEnv("LOG_LEVEL", defaultLevel)
	}
	if l, err := zerolog.ParseLevel(lvl); err == nil {
		zerolog.SetGlobalLevel(l)
	} else {
		log.Warn().Str("level", lvl).Msg("unknown log level, keeping default")
	}

	path := words.Resolve(c.dictionary)
	dict, err := words.Load(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to load dictionary")
	}
	entries, candidates := dict.Stats()
	log.Debug().Str("path", path).Int("entries", entries).Int("candidates", candidates).Msg("dictionary loaded")
	return dict
}

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cmd, args := "play", os.Args[1:]
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch cmd {
	case "play":
		err = runPlay(ctx, args)
	case "serve":
		err = runServe(args)
	case "bench":
		err = runBench(ctx, args)
	case "help":
		fmt.Fprint(os.Stdout, usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("cmd", cmd).Msg("exited")
	}
}

func runPlay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	var c common
	c.register(fs)
	freqs := fs.Bool("frequencies", false, "print letter frequencies of the remaining candidates each turn")
	noColor := fs.Bool("no-color", false, "print replies as symbols instead of colored tiles")
	_ = fs.Parse(args)

	dict := c.setup("warn")
	sh := cli.New(cli.Options{
		Dictionary:      dict,
		ShowFrequencies: *freqs,
		Color:           !*noColor && os.Getenv("NO_COLOR") == "",
		In:              os.Stdin,
		Out:             os.Stdout,
		Err:             os.Stderr,
	})
	err := sh.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var c common
	c.register(fs)
	addr := fs.String("addr", "", "listen address (default: :$PORT or :5175)")
	dsn := fs.String("db", "", "sqlite database path (default: $DATABASE_PATH or ./data/solver.db)")
	_ = fs.Parse(args)

	// structured output for log collectors
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	dict := c.setup("info")

	if *dsn == "" {
		*dsn = getEnv("DATABASE_PATH", "./data/solver.db")
	}
	sqlDB, err := db.OpenMigrated(*dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer sqlDB.Close()

	if os.Getenv("JWT_SECRET") == "" {
		log.Warn().Msg("JWT_SECRET is not set, using an insecure development secret")
	}

	srv := httpserver.New(store.NewMemoryStore(), dict, auth.NewService(sqlDB, auth.ConfigFromEnv()), history.NewStore(sqlDB))
	if *addr == "" {
		*addr = ":" + getEnv("PORT", "5175")
	}
	log.Info().Str("addr", *addr).Str("db", *dsn).Msg("starting solver server")
	return srv.Start(*addr)
}

func runBench(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	var c common
	c.register(fs)
	limit := fs.Int("limit", 0, "play at most this many answers (0: all)")
	_ = fs.Parse(args)

	dict := c.setup("info")
	rep, err := bench.Run(ctx, dict, dict.Candidates(), bench.Options{Progress: os.Stderr, Limit: *limit})
	fmt.Fprintln(os.Stderr)
	fmt.Fprint(os.Stdout, rep.String())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
