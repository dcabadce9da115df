package trainer

import (
	"context"
	"fmt"
	"log"

	"github.com/tictacnet/tictacnet/internal/dataset"
	"github.com/tictacnet/tictacnet/internal/ml"
	"github.com/tictacnet/tictacnet/internal/nn"
)

type Checkpoint struct {
	Epoch       int
	AverageLoss float64
}

// Trainer feeds every sample through the network once per epoch, in dataset
// order, one gradient step per sample.
type Trainer struct {
	net      *nn.Network
	training []dataset.Sample
	config   Config
}

func New(net *nn.Network, training []dataset.Sample, config Config) (*Trainer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(training) == 0 {
		return nil, fmt.Errorf("%w: empty training dataset", ml.ErrInvalidConfiguration)
	}
	if err := dataset.Validate(training, net.InputSize(), net.OutputSize()); err != nil {
		return nil, err
	}
	return &Trainer{
		net:      net,
		training: training,
		config:   config,
	}, nil
}

// Train runs all epochs and returns the average loss measured every
// ReportEvery epochs. ctx is only checked between epochs.
func (t *Trainer) Train(ctx context.Context) ([]Checkpoint, error) {
	log.Println("Train started")
	defer log.Println("Train finished")

	var checkpoints []Checkpoint
	for epoch := 1; epoch <= t.config.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return checkpoints, err
		}
		if err := t.startEpoch(); err != nil {
			return checkpoints, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if epoch%t.config.ReportEvery != 0 {
			continue
		}
		avgLoss, err := AverageLoss(ctx, t.net, t.training, t.config.Threads)
		if err != nil {
			return checkpoints, err
		}
		log.Printf("Epoch %d: Average Loss = %.4f", epoch, avgLoss)
		checkpoints = append(checkpoints, Checkpoint{
			Epoch:       epoch,
			AverageLoss: avgLoss,
		})
	}
	return checkpoints, nil
}

func (t *Trainer) startEpoch() error {
	for i := range t.training {
		var sample = &t.training[i]
		var _, err = t.net.Train(sample.Input, sample.Target, t.config.LearningRate)
		if err != nil {
			return err
		}
	}
	return nil
}
