package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// isNotFound reports whether err means the object is absent, which callers
// treat as an expected miss rather than a storage fault.
func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}

	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}

	return false
}

// classifyError converts S3 errors to storage faults with consistent
// context. Cancellation passes through so callers can distinguish an
// abandoned request from broken storage.
func classifyError(err error, operation string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("s3: %s failed (code: %s): %w", operation, apiErr.ErrorCode(), err)
	}

	return fmt.Errorf("s3: %s failed: %w", operation, err)
}
