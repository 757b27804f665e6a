// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build windows

// Package al binds the subset of OpenAL that qu's audio package actually
// drives: device/context setup, one-shot and streamed source playback,
// and per-source gain. It is not a general-purpose OpenAL wrapper — see
// audio.OpenALBackend for the only caller.
package al

// OpenAL: https://openal.org
// Requires the 64-bit soft_oal.dll from:
// o https://openal-soft.org/openal-binaries/

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	libopenal32 *windows.LazyDLL

	alGetError             *windows.LazyProc
	alListenerf            *windows.LazyProc
	alGenSources           *windows.LazyProc
	alDeleteSources        *windows.LazyProc
	alSourcef              *windows.LazyProc
	alGetSourcei           *windows.LazyProc
	alSourcePlay           *windows.LazyProc
	alSourceStop           *windows.LazyProc
	alSourcePause          *windows.LazyProc
	alSourceQueueBuffers   *windows.LazyProc
	alSourceUnqueueBuffers *windows.LazyProc
	alGenBuffers           *windows.LazyProc
	alDeleteBuffers        *windows.LazyProc
	alBufferData           *windows.LazyProc

	alcCreateContext      *windows.LazyProc
	alcMakeContextCurrent *windows.LazyProc
	alcDestroyContext     *windows.LazyProc
	alcOpenDevice         *windows.LazyProc
	alcCloseDevice        *windows.LazyProc
)

// Init loads soft_oal.dll and resolves the function pointers this
// package exposes. Safe to call more than once.
func Init() error {
	libopenal32 = windows.NewLazyDLL("soft_oal.dll")

	alGetError = libopenal32.NewProc("alGetError")
	alListenerf = libopenal32.NewProc("alListenerf")
	alGenSources = libopenal32.NewProc("alGenSources")
	alDeleteSources = libopenal32.NewProc("alDeleteSources")
	alSourcef = libopenal32.NewProc("alSourcef")
	alGetSourcei = libopenal32.NewProc("alGetSourcei")
	alSourcePlay = libopenal32.NewProc("alSourcePlay")
	alSourceStop = libopenal32.NewProc("alSourceStop")
	alSourcePause = libopenal32.NewProc("alSourcePause")
	alSourceQueueBuffers = libopenal32.NewProc("alSourceQueueBuffers")
	alSourceUnqueueBuffers = libopenal32.NewProc("alSourceUnqueueBuffers")
	alGenBuffers = libopenal32.NewProc("alGenBuffers")
	alDeleteBuffers = libopenal32.NewProc("alDeleteBuffers")
	alBufferData = libopenal32.NewProc("alBufferData")

	alcCreateContext = libopenal32.NewProc("alcCreateContext")
	alcMakeContextCurrent = libopenal32.NewProc("alcMakeContextCurrent")
	alcDestroyContext = libopenal32.NewProc("alcDestroyContext")
	alcOpenDevice = libopenal32.NewProc("alcOpenDevice")
	alcCloseDevice = libopenal32.NewProc("alcCloseDevice")
	return nil
}

// AL/al.h constants (AL_ prefix dropped), limited to the ones
// audio.OpenALBackend references.
const (
	NO_ERROR          = 0
	GAIN              = 0x100A
	SOURCE_STATE      = 0x1010
	PLAYING           = 0x1012
	PAUSED            = 0x1013
	BUFFERS_QUEUED    = 0x1015
	BUFFERS_PROCESSED = 0x1016
	FORMAT_MONO16     = 0x1101
	FORMAT_STEREO16   = 0x1103
)

func cbool(albool uintptr) bool { return albool == 1 }

// Context and Device are opaque handles; pointer-sized on every
// platform this binding targets.
type (
	Context uintptr
	Device  uintptr
	Pointer unsafe.Pointer
)

func GetError() int32 {
	ret, _, _ := syscall.Syscall(alGetError.Addr(), 0, 0, 0, 0)
	return int32(ret)
}

func Listenerf(param int32, value float32) {
	syscall.Syscall(alListenerf.Addr(), 2, uintptr(param), uintptr(value), 0)
}

func GenSources(n int32, sources *uint32) {
	syscall.Syscall(alGenSources.Addr(), 2, uintptr(n), uintptr(unsafe.Pointer(sources)), 0)
}

func DeleteSources(n int32, sources *uint32) {
	syscall.Syscall(alDeleteSources.Addr(), 2, uintptr(n), uintptr(unsafe.Pointer(sources)), 0)
}

func Sourcef(sid uint32, param int32, value float32) {
	syscall.Syscall(alSourcef.Addr(), 3, uintptr(sid), uintptr(param), uintptr(value))
}

func GetSourcei(sid uint32, param int32, value *int32) {
	syscall.Syscall(alGetSourcei.Addr(), 3, uintptr(sid), uintptr(param), uintptr(unsafe.Pointer(value)))
}

func SourcePlay(sid uint32) {
	syscall.Syscall(alSourcePlay.Addr(), 1, uintptr(sid), 0, 0)
}

func SourceStop(sid uint32) {
	syscall.Syscall(alSourceStop.Addr(), 1, uintptr(sid), 0, 0)
}

func SourcePause(sid uint32) {
	syscall.Syscall(alSourcePause.Addr(), 1, uintptr(sid), 0, 0)
}

func SourceQueueBuffers(sid uint32, numEntries int32, bids *uint32) {
	syscall.Syscall(alSourceQueueBuffers.Addr(), 3, uintptr(sid), uintptr(numEntries), uintptr(unsafe.Pointer(bids)))
}

func SourceUnqueueBuffers(sid uint32, numEntries int32, bids *uint32) {
	syscall.Syscall(alSourceUnqueueBuffers.Addr(), 3, uintptr(sid), uintptr(numEntries), uintptr(unsafe.Pointer(bids)))
}

func GenBuffers(n int32, buffers *uint32) {
	syscall.Syscall(alGenBuffers.Addr(), 2, uintptr(n), uintptr(unsafe.Pointer(buffers)), 0)
}

func DeleteBuffers(n int32, buffers *uint32) {
	syscall.Syscall(alDeleteBuffers.Addr(), 2, uintptr(n), uintptr(unsafe.Pointer(buffers)), 0)
}

func BufferData(bid uint32, format int32, data Pointer, size int32, freq int32) {
	syscall.Syscall6(alBufferData.Addr(), 5, uintptr(bid), uintptr(format), uintptr(data), uintptr(size), uintptr(freq), 0)
}

func CreateContext(device Device, attrlist *int32) Context {
	ret, _, _ := syscall.Syscall(alcCreateContext.Addr(), 2, uintptr(device), uintptr(unsafe.Pointer(attrlist)), 0)
	return Context(ret)
}

func MakeContextCurrent(context Context) bool {
	ret, _, _ := syscall.Syscall(alcMakeContextCurrent.Addr(), 1, uintptr(context), 0, 0)
	return cbool(ret)
}

func DestroyContext(context Context) {
	syscall.Syscall(alcDestroyContext.Addr(), 1, uintptr(context), 0, 0)
}

func OpenDevice(devicename string) Device {
	if devicename == "" {
		ret, _, _ := syscall.Syscall(alcOpenDevice.Addr(), 1, 0, 0, 0)
		return Device(ret)
	}
	str16, err := syscall.UTF16PtrFromString(devicename)
	if err != nil {
		return 0
	}
	ret, _, _ := syscall.Syscall(alcOpenDevice.Addr(), 1, uintptr(unsafe.Pointer(str16)), 0, 0)
	return Device(ret)
}

func CloseDevice(device Device) bool {
	ret, _, _ := syscall.Syscall(alcCloseDevice.Addr(), 1, uintptr(device), 0, 0)
	return cbool(ret)
}
