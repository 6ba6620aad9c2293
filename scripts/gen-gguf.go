/*
	Basic Script that generates sample GGUF metadata files for manual testing of the CLI.
*/

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"path/filepath"
	"sync"
	"time"

	"github.com/Noth1ngLol/Llol/internal/codec"
	"github.com/Noth1ngLol/Llol/internal/record"
)

const (
	concurrency = 4

	// Extra random records on top of the fixed general.* set
	extraRecords = 50
)

func main() {
	dir := flag.String("dir", ".", "Directory the files are written to")
	files := flag.Int("files", 1, "Number of files to generate")
	flag.Parse()

	start := time.Now()

	jobs := make(chan int)
	var wg sync.WaitGroup

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
			for n := range jobs {
				path := filepath.Join(*dir, fmt.Sprintf("sample-%03d.gguf", n))
				if err := writeSample(path, rng); err != nil {
					fmt.Printf("[worker %d] %s: %v\n", id, path, err)
				}
			}
		}(i)
	}

	for n := 0; n < *files; n++ {
		jobs <- n
	}
	close(jobs)

	wg.Wait()
	fmt.Printf("Generated %d file(s) in %v\n", *files, time.Since(start))
}

func writeSample(path string, rng *rand.Rand) error {
	records := []record.Record{
		record.New("general.architecture", record.String("llama")),
		record.New("general.name", record.String(fmt.Sprintf("sample-%d", rng.Intn(1000)))),
		record.New("general.quantized", record.Bool(rng.Intn(2) == 1)),
		record.New("llama.context_length", record.Int(int64(512<<rng.Intn(4)))),
		record.New("llama.rope.freq_base", record.Float(10000.5)),
		record.New("general.license", record.Null{}),
	}

	for i := 0; i < extraRecords; i++ {
		key := fmt.Sprintf("sample.key_%03d", i)
		switch rng.Intn(4) {
		case 0:
			records = append(records, record.New(key, record.Int(rng.Int63())))
		case 1:
			records = append(records, record.New(key, record.Float(rng.Float64())))
		case 2:
			records = append(records, record.New(key, record.Bool(rng.Intn(2) == 1)))
		default:
			records = append(records, record.New(key, record.String(fmt.Sprintf("value-%03d", i))))
		}
	}

	data, err := codec.EncodeToBytes(records)
	if err != nil {
		return err
	}
	return codec.WriteFile(path, data, true)
}
