package collector

import "errors"

var errNoResponse = errors.New("collector finished without a response")
