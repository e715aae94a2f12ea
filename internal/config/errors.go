package config

import "github.com/atlanticdynamic/typecast/internal/config/errz"

var (
	ErrFailedToLoadConfig     = errz.ErrFailedToLoadConfig
	ErrFailedToConvertConfig  = errz.ErrFailedToConvertConfig
	ErrFailedToValidateConfig = errz.ErrFailedToValidateConfig
	ErrUnsupportedConfigVer   = errz.ErrUnsupportedConfigVer
)
