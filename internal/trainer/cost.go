package trainer

import (
	"context"
	"sync/atomic"

	"github.com/tictacnet/tictacnet/internal/dataset"
	"github.com/tictacnet/tictacnet/internal/nn"
	"golang.org/x/sync/errgroup"
)

// AverageLoss is the mean loss of net over samples. It only runs forward
// passes, so it must not overlap with training on the same network.
func AverageLoss(ctx context.Context, net *nn.Network, samples []dataset.Sample, threads int) (float64, error) {
	if len(samples) == 0 {
		return 0, nil
	}
	if threads <= 0 {
		threads = 1
	}
	var losses = make([]float64, len(samples))
	var index int32 = -1
	g, ctx := errgroup.WithContext(ctx)
	for t := 0; t < threads; t++ {
		g.Go(func() error {
			for {
				var i = int(atomic.AddInt32(&index, 1))
				if i >= len(samples) {
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				var sample = &samples[i]
				loss, err := net.Loss(sample.Input, sample.Target)
				if err != nil {
					return err
				}
				losses[i] = loss
			}
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	var totalLoss float64
	for _, loss := range losses {
		totalLoss += loss
	}
	return totalLoss / float64(len(samples)), nil
}
