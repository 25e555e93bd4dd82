package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/viant/afs"
	"github.com/viant/reqgate"
	"github.com/viant/reqgate/gateway"
	"github.com/viant/reqgate/transport"
)

// Service dispatches a single request
type Service struct {
	fs     afs.Service
	writer io.Writer
}

// Run dispatches request described by options and writes the result
func (s *Service) Run(ctx context.Context, options *Options) error {
	clientOptions, err := options.clientOptions(ctx)
	if err != nil {
		return err
	}
	client, err := reqgate.New(ctx, clientOptions)
	if err != nil {
		return err
	}
	defer client.Close()

	if options.Token != "" {
		if options.Session {
			err = client.SetSessionToken(ctx, options.Token)
		} else {
			err = client.SetToken(ctx, options.Token)
		}
		if err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}
	}
	request, err := options.request()
	if err != nil {
		return err
	}
	resp, err := client.Do(ctx, request)
	if err != nil {
		var statusErr *transport.StatusError
		if errors.As(err, &statusErr) && statusErr.IsUnauthorized() {
			return fmt.Errorf("%w, login: %v", err, client.Router.Location(ctx))
		}
		return err
	}
	if resp.Kind == transport.KindBinary {
		return s.writeBinary(ctx, options.Output, resp)
	}
	payload, err := gateway.Unwrap[any](resp)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.writer, string(data))
	return err
}

func (s *Service) writeBinary(ctx context.Context, URL string, resp *transport.Response) error {
	if URL == "" {
		_, err := s.writer.Write(resp.Body)
		return err
	}
	if err := s.fs.Upload(ctx, URL, 0o644, bytes.NewReader(resp.Body)); err != nil {
		return fmt.Errorf("failed to write response to %v: %w", URL, err)
	}
	return nil
}

// New creates a service writing results to writer
func New(writer io.Writer) *Service {
	return &Service{fs: afs.New(), writer: writer}
}
