package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/mode"
)

func main() {
	// A missing .env is fine, the environment or flags are used instead
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment variables from .env")
	}

	var (
		capacity = flag.Int("capacity", envInt("FINDMODE_CAPACITY", mode.DefaultCapacity), "initial number of buckets of the tally map")
		hashName = flag.String("hash", getEnv("FINDMODE_HASH", "internal"), "hash function: sum, weighted, xxhash or internal")
		verbose  = flag.Bool("v", false, "log progress")
	)
	flag.Parse()

	var hashFunc hashfunc.HashFunc[string]
	if *hashName != "internal" {
		var ok bool
		if hashFunc, ok = hashfunc.ByName(*hashName); !ok {
			log.Fatalf("unknown hash function %q", *hashName)
		}
	}

	words, err := readWords(flag.Args())
	if err != nil {
		log.Fatalf("error while reading input: %s", err)
	}
	if *verbose {
		log.Printf("read %d words, tallying with %d buckets and %s hash", len(words), *capacity, *hashName)
	}

	modes, frequency, err := mode.FindModeWithCapacity(words, *capacity, hashFunc)
	if err != nil {
		log.Fatalf("error while finding mode: %s", err)
	}

	fmt.Printf("mode: %s\nfrequency: %d\n", strings.Join(modes, " "), frequency)
}

// readWords - Reads whitespace separated words from the named files, or from stdin if there are none
func readWords(fileNames []string) (words []string, err error) {
	if len(fileNames) == 0 {
		return scanWords(os.Stdin)
	}

	for _, name := range fileNames {
		var f *os.File
		f, err = os.Open(name)
		if err != nil {
			return
		}

		var w []string
		w, err = scanWords(f)
		_ = f.Close()
		if err != nil {
			err = fmt.Errorf("%s: %w", name, err)
			return
		}
		words = append(words, w...)
	}

	return
}

func scanWords(r io.Reader) (words []string, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	err = scanner.Err()

	return
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
