package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dondlab/dond-go/internal/cli"
	"github.com/dondlab/dond-go/internal/game"
)

func main() {
	logger := log.New(os.Stderr, "[dond] ", log.LstdFlags)

	if err := godotenv.Load(); err == nil {
		logger.Println("loaded environment from .env")
	}

	edition := flag.String("edition", "classic26", "prize catalog: classic26 or uk22")
	seed := flag.Int64("seed", 0, "random seed (0 = from the clock)")
	flag.Parse()

	prizes, ok := game.Editions[*edition]
	if !ok {
		logger.Fatalf("unknown edition %q", *edition)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(*seed))
	session := cli.NewSession(prizes, rng, os.Stdin, os.Stdout)

	if _, err := session.Play(); err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Println("\nGoodbye!")
			return
		}
		logger.Fatalf("game aborted: %v", err)
	}
}
