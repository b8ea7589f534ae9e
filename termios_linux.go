package main

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETSF // TCSETSF flushes pending input, like TCSAFLUSH
)
