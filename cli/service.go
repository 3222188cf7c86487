package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/viant/afs"
	"github.com/viant/dangit"
	"github.com/viant/dangit/arrays"
	"github.com/viant/dangit/env"
	"github.com/viant/dangit/join"
	"github.com/viant/dangit/namespace"
	"github.com/viant/dangit/whatis"
	"gopkg.in/yaml.v3"
)

var errPolarity = errors.New("truthy and falsy are mutually exclusive")

// Service executes dangit commands.
type Service struct {
	fs      afs.Service
	output  io.Writer
	context *env.Context
}

// WhatIs prints one type tag per value.
func (s *Service) WhatIs(values []string, keepCase bool) error {
	for _, value := range values {
		if _, err := fmt.Fprintln(s.output, whatis.Tag(decode(value), !keepCase)); err != nil {
			return err
		}
	}
	return nil
}

// Describe prints one human friendly type per value.
func (s *Service) Describe(values []string) error {
	for _, value := range values {
		if _, err := fmt.Fprintln(s.output, whatis.Describe(decode(value))); err != nil {
			return err
		}
	}
	return nil
}

// Namespace resolves the path given by options and extra segments in the input
// document, then writes the updated document or the resolved object.
func (s *Service) Namespace(ctx context.Context, options *NamespaceOptions, segments []string) error {
	document := map[string]any{}
	if options.Input != "" {
		data, err := s.fs.DownloadWithURL(ctx, options.Input)
		if err != nil {
			return fmt.Errorf("failed to load document %v: %w", options.Input, err)
		}
		if err = yaml.Unmarshal(data, &document); err != nil {
			return fmt.Errorf("failed to decode document %v: %w", options.Input, err)
		}
		if document == nil {
			document = map[string]any{}
		}
	}
	leaf, err := namespace.Resolve([]any{options.Path, segments},
		namespace.WithBase(document),
		namespace.WithForce(!options.NoForce),
		namespace.WithContext(s.context))
	if err != nil {
		return err
	}
	var result any = document
	if options.Leaf {
		result = leaf
	}
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if options.Output == "" {
		_, err = s.output.Write(data)
		return err
	}
	if err = s.fs.Upload(ctx, options.Output, os.FileMode(0o644), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to store document %v: %w", options.Output, err)
	}
	return nil
}

// Join prints values joined according to options.
func (s *Service) Join(options *JoinOptions, values []string) error {
	if options.Truthy && options.Falsy {
		return errPolarity
	}
	joinOptions := &join.Options{Separator: options.Separator, Surround: options.Surround}
	if options.Truthy || options.Falsy {
		polarity := options.Truthy
		joinOptions.Polarity = &polarity
	}
	args := make([]any, len(values))
	for i, value := range values {
		args[i] = decode(value)
	}
	var text string
	if options.Quote {
		text = join.Quote(joinOptions, args...)
	} else {
		text = join.Join(joinOptions, args...)
	}
	_, err := fmt.Fprintln(s.output, text)
	return err
}

// Flatten prints all values as one flat YAML sequence.
func (s *Service) Flatten(values []string) error {
	args := make([]any, len(values))
	for i, value := range values {
		args[i] = decode(value)
	}
	data, err := yaml.Marshal(arrays.Flatten(args...))
	if err != nil {
		return err
	}
	_, err = s.output.Write(data)
	return err
}

// API prints the public helpers.
func (s *Service) API() error {
	if _, err := fmt.Fprintf(s.output, "The %v %v public API:\n", dangit.Name, dangit.Version); err != nil {
		return err
	}
	for _, entry := range dangit.API() {
		if _, err := fmt.Fprintf(s.output, "  %-8v %v%v\n", entry.Type, entry.Name, entry.Symbol()); err != nil {
			return err
		}
	}
	return nil
}

// decode reads a command line value as YAML, falling back to the raw text.
func decode(text string) any {
	var value any
	if err := yaml.Unmarshal([]byte(text), &value); err != nil {
		return text
	}
	return value
}

// New creates a service writing to output.
func New(output io.Writer) *Service {
	return &Service{fs: afs.New(), output: output, context: env.New(os.Stderr)}
}
