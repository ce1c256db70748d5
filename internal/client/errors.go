package client

import "errors"

var ErrMissingDependency = errors.New("client app: services and adapters are required")
