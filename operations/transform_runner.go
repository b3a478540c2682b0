package operations

import (
	"context"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"

	"github.com/quarryhq/quarry-courier/quarry"
)

const (
	TransformationStartFailureFormat   = "Failed starting a %s transformation"
	TransformationPollFailureFormat    = "Failed checking on transformation %s"
	TransformationFailedErrorFormat    = "Transformation %s failed: %s"
	TransformationCancelledErrorFormat = "Transformation %s was cancelled"
)

//go:generate counterfeiter . transformService
type transformService interface {
	StartTransformation(projectID, assetID, version, datasetID, workflowType string) (quarry.Transformation, error)
	Transformation(projectID, transformationID string) (quarry.Transformation, error)
	CancelTransformation(projectID, transformationID string) error
}

// TransformRunner starts server-side transformations and polls them to a
// terminal state, backing off between polls. Ending the context requests
// cancellation of the running transformation, best effort.
type TransformRunner struct {
	service             transformService
	pollInitialInterval time.Duration
	pollMaxInterval     time.Duration
	logger              *log.Logger
}

func NewTransformRunner(service transformService, pollInitialInterval, pollMaxInterval time.Duration, logger *log.Logger) *TransformRunner {
	return &TransformRunner{
		service:             service,
		pollInitialInterval: pollInitialInterval,
		pollMaxInterval:     pollMaxInterval,
		logger:              logger,
	}
}

func (r *TransformRunner) Run(ctx context.Context, projectID, assetID, version, datasetID, workflowType string) (quarry.Transformation, error) {
	transformation, err := r.service.StartTransformation(projectID, assetID, version, datasetID, workflowType)
	if err != nil {
		return quarry.Transformation{}, errors.Wrapf(err, TransformationStartFailureFormat, workflowType)
	}
	r.logger.Printf("Started %s transformation %s", transformation.WorkflowType, transformation.ID)

	return r.Await(ctx, projectID, transformation)
}

// Await polls an already started transformation until it reaches a
// terminal state. Failed and cancelled transformations surface as errors.
func (r *TransformRunner) Await(ctx context.Context, projectID string, transformation quarry.Transformation) (quarry.Transformation, error) {
	delays := backoff.NewExponentialBackOff()
	delays.InitialInterval = r.pollInitialInterval
	delays.MaxInterval = r.pollMaxInterval
	delays.MaxElapsedTime = 0

	for !transformation.Terminal() {
		timer := time.NewTimer(delays.NextBackOff())
		select {
		case <-ctx.Done():
			timer.Stop()
			r.cancel(projectID, transformation.ID)
			return transformation, ctx.Err()
		case <-timer.C:
		}

		polled, err := r.service.Transformation(projectID, transformation.ID)
		if err != nil {
			return transformation, errors.Wrapf(err, TransformationPollFailureFormat, transformation.ID)
		}
		if polled.Status != transformation.Status || polled.Progress != transformation.Progress {
			r.logger.Printf("Transformation %s is %s (%d%%)", polled.ID, polled.Status, polled.Progress)
		}
		transformation = polled
	}

	switch transformation.Status {
	case quarry.TransformationFailed:
		return transformation, errors.Errorf(TransformationFailedErrorFormat, transformation.ID, transformation.ErrorMessage)
	case quarry.TransformationCancelled:
		return transformation, errors.Errorf(TransformationCancelledErrorFormat, transformation.ID)
	}
	return transformation, nil
}

func (r *TransformRunner) cancel(projectID, transformationID string) {
	if err := r.service.CancelTransformation(projectID, transformationID); err != nil {
		r.logger.Printf("Could not cancel transformation %s: %s", transformationID, err)
		return
	}
	r.logger.Printf("Requested cancellation of transformation %s", transformationID)
}
