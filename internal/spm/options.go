package spm

import (
	"strings"

	"github.com/pkg/errors"
)

// decodeOptions are post-processing directives applied to the id sequence
// before decoding. They correspond to the ':' separated --extra_options
// flag, e.g. "reverse:bos:eos".
type decodeOptions struct {
	reverse bool
	bos     bool
	eos     bool
}

func parseExtraOptions(spec string) (decodeOptions, error) {
	var opts decodeOptions
	if spec == "" {
		return opts, nil
	}
	for _, name := range strings.Split(spec, ":") {
		switch name {
		case "":
			// tolerate stray separators
		case "reverse":
			opts.reverse = true
		case "bos":
			opts.bos = true
		case "eos":
			opts.eos = true
		default:
			return decodeOptions{}, errors.Errorf("unknown decode extra option %q", name)
		}
	}
	return opts, nil
}

func (o decodeOptions) any() bool {
	return o.reverse || o.bos || o.eos
}
