package cli

import "context"

// Options defines the dangit commands.
type Options struct {
	WhatIs    WhatIsOptions    `command:"whatis" description:"print the type tag of each value"`
	Describe  DescribeOptions  `command:"describe" description:"print the human friendly type of each value"`
	Namespace NamespaceOptions `command:"namespace" description:"resolve or create a dot separated path in a document"`
	Join      JoinOptions      `command:"join" description:"join values into a single line"`
	Flatten   FlattenOptions   `command:"flatten" description:"flatten nested arrays into one"`
	API       APIOptions       `command:"api" description:"list the public API"`
}

type WhatIsOptions struct {
	KeepCase bool `short:"c" long:"keep-case" description:"keep the original casing of the tag"`
	service  *Service
}

func (o *WhatIsOptions) Execute(args []string) error {
	return o.service.WhatIs(args, o.KeepCase)
}

type DescribeOptions struct {
	service *Service
}

func (o *DescribeOptions) Execute(args []string) error {
	return o.service.Describe(args)
}

type NamespaceOptions struct {
	Input   string   `short:"i" long:"input" description:"document URL (yaml or json), an empty document when not set"`
	Output  string   `short:"o" long:"output" description:"destination URL, stdout when not set"`
	Path    []string `short:"p" long:"path" description:"path segment, dots separate nested segments"`
	NoForce bool     `short:"n" long:"no-force" description:"fail instead of creating missing segments"`
	Leaf    bool     `short:"l" long:"leaf" description:"print the resolved object instead of the whole document"`
	service *Service
}

func (o *NamespaceOptions) Execute(args []string) error {
	return o.service.Namespace(context.Background(), o, args)
}

type JoinOptions struct {
	Separator string `short:"s" long:"separator" description:"separator placed between values"`
	Surround  string `long:"surround" description:"token placed on both sides of the result"`
	Quote     bool   `short:"q" long:"quote" description:"wrap the result in double quotes"`
	Truthy    bool   `short:"t" long:"truthy" description:"keep truthy values only"`
	Falsy     bool   `short:"f" long:"falsy" description:"keep falsy values only"`
	service   *Service
}

func (o *JoinOptions) Execute(args []string) error {
	return o.service.Join(o, args)
}

type FlattenOptions struct {
	service *Service
}

func (o *FlattenOptions) Execute(args []string) error {
	return o.service.Flatten(args)
}

type APIOptions struct {
	service *Service
}

func (o *APIOptions) Execute(args []string) error {
	return o.service.API()
}

// NewOptions binds every command to service.
func NewOptions(service *Service) *Options {
	return &Options{
		WhatIs:    WhatIsOptions{service: service},
		Describe:  DescribeOptions{service: service},
		Namespace: NamespaceOptions{service: service},
		Join:      JoinOptions{service: service},
		Flatten:   FlattenOptions{service: service},
		API:       APIOptions{service: service},
	}
}
