package dataset

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Ext is the extension of dataset files picked up from a folder.
const Ext = ".txt"

// Read parses one sample per line in the form
//
//	-1,0,0,0,0,0,0,0,0;0,0,0,0,1,0,0,0,0
//
// Blank lines and lines starting with # are skipped.
func Read(r io.Reader) ([]Sample, error) {
	var result []Sample
	var scanner = bufio.NewScanner(r)
	var lineNo int
	for scanner.Scan() {
		lineNo++
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sample, err := parseSample(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		result = append(result, sample)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func parseSample(line string) (Sample, error) {
	var fields = strings.Split(line, ";")
	if len(fields) != 2 {
		return Sample{}, fmt.Errorf("bad sample %q", line)
	}
	input, err := parseVector(fields[0])
	if err != nil {
		return Sample{}, fmt.Errorf("input: %w", err)
	}
	target, err := parseVector(fields[1])
	if err != nil {
		return Sample{}, fmt.Errorf("target: %w", err)
	}
	return Sample{Input: input, Target: target}, nil
}

func parseVector(s string) ([]float64, error) {
	var fields = strings.Split(s, ",")
	var result = make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

// Load reads a dataset file, or every dataset file of a folder.
func Load(ctx context.Context, path string) ([]Sample, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return loadFile(path)
	}
	files, err := datasetFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %v files in %v", Ext, path)
	}
	return LoadFiles(ctx, files)
}

// LoadFiles reads the files concurrently and concatenates them in argument order.
func LoadFiles(ctx context.Context, paths []string) ([]Sample, error) {
	g, ctx := errgroup.WithContext(ctx)
	var chunks = make([][]Sample, len(paths))
	for i := range paths {
		var i = i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			samples, err := loadFile(paths[i])
			if err != nil {
				return err
			}
			chunks[i] = samples
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var result []Sample
	for _, chunk := range chunks {
		result = append(result, chunk...)
	}
	return result, nil
}

func loadFile(path string) ([]Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	samples, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	log.Println("loadFile",
		"path", path,
		"samples", len(samples))
	return samples, nil
}

func datasetFiles(folderPath string) ([]string, error) {
	dirs, err := os.ReadDir(folderPath)
	if err != nil {
		return nil, err
	}
	var result []string
	for _, de := range dirs {
		if !de.IsDir() && filepath.Ext(de.Name()) == Ext {
			result = append(result, filepath.Join(folderPath, de.Name()))
		}
	}
	return result, nil
}
