package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/tictacnet/tictacnet/internal/dataset"
	"github.com/tictacnet/tictacnet/internal/nn"
	"github.com/tictacnet/tictacnet/internal/tictactoe"
	"github.com/tictacnet/tictacnet/internal/trainer"
)

type Config struct {
	trainingPath string
	hiddenSize   int
	epochs       int
	learningRate float64
	reportEvery  int
	threads      int
	seed         int64
	play         bool
}

var config Config

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	flag.StringVar(&config.trainingPath, "td", "", "Path to training dataset file or folder (built-in corpus if empty)")
	flag.IntVar(&config.hiddenSize, "hidden", 10, "Number of hidden neurons")
	flag.IntVar(&config.epochs, "epochs", 100_000, "Number of epochs")
	flag.Float64Var(&config.learningRate, "lr", 0.1, "Learning rate")
	flag.IntVar(&config.reportEvery, "report", 1000, "Report average loss every N epochs")
	flag.IntVar(&config.threads, "threads", runtime.NumCPU(), "Number of threads for loss evaluation")
	flag.Int64Var(&config.seed, "seed", 0, "Weights seed (0 means time based)")
	flag.BoolVar(&config.play, "play", false, "Play against the trained network on the console")
	flag.Parse()

	log.Printf("%+v", config)

	var err = run()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	var ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var training = dataset.TicTacToe()
	if config.trainingPath != "" {
		var samples, err = dataset.Load(ctx, mapPath(config.trainingPath))
		if err != nil {
			return err
		}
		training = samples
	}
	log.Println("Loaded dataset", len(training))

	var seed = config.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	net, err := nn.New(tictactoe.Size, config.hiddenSize, tictactoe.Size, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	t, err := trainer.New(net, training, trainer.Config{
		Epochs:       config.epochs,
		LearningRate: config.learningRate,
		ReportEvery:  config.reportEvery,
		Threads:      config.threads,
	})
	if err != nil {
		return err
	}
	if _, err := t.Train(ctx); err != nil {
		return err
	}

	avgLoss, err := trainer.AverageLoss(ctx, net, training, config.threads)
	if err != nil {
		return err
	}
	log.Printf("Final average loss = %.4f", avgLoss)

	if !config.play {
		return nil
	}
	return tictactoe.Play(os.Stdin, os.Stdout, net)
}
