package opts

import (
	"github.com/walteh/striprc/pkg/config"
	"github.com/walteh/striprc/pkg/log"
)

// RootOpts holds the dependencies shared by all commands
type RootOpts struct {
	Config     *config.Config
	UserLogger *log.UserLogger
}
