// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

//go:build linux || darwin || freebsd || netbsd || openbsd

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

var termRestore unix.Termios
var termActive bool

func enterRawTerm() {
	termios, err := unix.IoctlGetTermios(int(os.Stdin.Fd()), ioctlGetTermios)

	if err != nil {
		panic(err)
	}

	termRestore = *termios
	termstate := *termios

	termstate.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR
	termstate.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN
	termstate.Cflag &^= unix.CSIZE | unix.PARENB
	termstate.Cflag |= unix.CS8

	// Block until a key arrives, the machine has nothing else to do
	termstate.Cc[unix.VMIN] = 1
	termstate.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(
		int(os.Stdin.Fd()), ioctlSetTermios, &termstate,
	); err != nil {
		panic(err)
	}

	termActive = true
}

func exitRawTerm() {
	if !termActive {
		return
	}

	if err := unix.IoctlSetTermios(
		int(os.Stdin.Fd()), ioctlSetTermios, &termRestore,
	); err != nil {
		panic(err)
	}

	termActive = false
}
