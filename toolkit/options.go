package toolkit

import (
	"github.com/steelcutops/systoolkit/logger"
	"github.com/steelcutops/systoolkit/toolkit/commandmanager"
	"github.com/steelcutops/systoolkit/toolkit/filemanager"
	"github.com/steelcutops/systoolkit/toolkit/hostmanager"
	"github.com/steelcutops/systoolkit/toolkit/networkmanager"
)

type Option func(*Toolkit)

// WithLogger returns an Option that sets the logger handed to every default manager.
func WithLogger(l logger.Logger) Option {
	return func(tk *Toolkit) {
		tk.logger = l
	}
}

// WithShell returns an Option that sets the interpreter used by RunShellCommand.
func WithShell(shell string) Option {
	return func(tk *Toolkit) {
		tk.shell = shell
	}
}

// WithSudoPassword returns an Option that sets the password fed to sudo by RunPrivilegedCommand.
func WithSudoPassword(password string) Option {
	return func(tk *Toolkit) {
		tk.sudoPassword = password
	}
}

func WithCommandManager(cm commandmanager.CommandManager) Option {
	return func(tk *Toolkit) {
		tk.CommandManager = cm
	}
}

func WithFileManager(fm filemanager.FileManager) Option {
	return func(tk *Toolkit) {
		tk.FileManager = fm
	}
}

func WithHostManager(hm hostmanager.HostManager) Option {
	return func(tk *Toolkit) {
		tk.HostManager = hm
	}
}

func WithNetworkManager(nm networkmanager.NetworkManager) Option {
	return func(tk *Toolkit) {
		tk.NetworkManager = nm
	}
}
