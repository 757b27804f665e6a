// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build !windows

// Package al binds the subset of OpenAL that qu's audio package actually
// drives: device/context setup, one-shot and streamed source playback,
// and per-source gain. It is not a general-purpose OpenAL wrapper — see
// audio.OpenALBackend for the only caller.
package al

// Design Notes:
// These bindings were based on the OpenAL header files found at:
//   http://repo.or.cz/w/openal-soft.git/blob/6dab9d54d1719105e0183f941a2b3dd36e9ba902:/include/AL/al.h
//   http://repo.or.cz/w/openal-soft.git/blob/6dab9d54d1719105e0183f941a2b3dd36e9ba902:/include/AL/alc.h
// Check information available at openal.org.

// #cgo darwin  LDFLAGS: -framework OpenAL
// #cgo linux   LDFLAGS: -lopenal -ldl
// #cgo windows LDFLAGS: -lOpenAL32
//
// #include <stdlib.h>
// #include <stdint.h>
// #if defined(__APPLE__)
// #include <dlfcn.h>
// #elif defined(_WIN32)
// #define WIN32_LEAN_AND_MEAN 1
// #include <windows.h>
// #else
// #include <dlfcn.h>
// #endif
//
// #ifdef _WIN32
// static HMODULE hmod = NULL;
// #elif !defined __APPLE__
// static void* plib = NULL;
// #endif
//
// // Helps bind function pointers to c functions.
// static void* bindMethod(const char* name) {
// #ifdef __APPLE__
// 	return dlsym(RTLD_DEFAULT, name);
// #elif _WIN32
// 	if(hmod == NULL) {
// 		hmod = LoadLibraryA("OpenAL32.dll");
// 	}
// 	return GetProcAddress(hmod, (LPCSTR)name);
// #else
// 	if(plib == NULL) {
// 		plib = dlopen("libopenal.so", RTLD_LAZY);
// 	}
// 	return dlsym(plib, name);
// #endif
// }
//
// #if defined(_WIN32)
//  #define AL_APIENTRY __cdecl
//  #define ALC_APIENTRY __cdecl
// #else
//  #define AL_APIENTRY
//  #define ALC_APIENTRY
// #endif
//
// // AL/al.h typedefs
// typedef char ALboolean;
// typedef char ALchar;
// typedef int ALint;
// typedef unsigned int ALuint;
// typedef int ALsizei;
// typedef int ALenum;
// typedef float ALfloat;
// typedef void ALvoid;
//
// #ifndef AL_API
// #define AL_API extern
// #endif
//
// // AL/alc.h typedefs
// typedef struct ALCdevice_struct ALCdevice;
// typedef struct ALCcontext_struct ALCcontext;
// typedef char ALCboolean;
// typedef char ALCchar;
// typedef int ALCint;
// typedef unsigned int ALCuint;
// typedef int ALCenum;
// typedef void ALCvoid;
//
// #ifndef ALC_API
// #define ALC_API extern
// #endif
//
// // AL/al.h pointers to the subset of functions this binding exposes.
// ALenum    (AL_APIENTRY *pfn_alGetError)( void );
// void      (AL_APIENTRY *pfn_alListenerf)( ALenum param, ALfloat value );
// void      (AL_APIENTRY *pfn_alGenSources)( ALsizei n, ALuint* sources );
// void      (AL_APIENTRY *pfn_alDeleteSources)( ALsizei n, const ALuint* sources );
// void      (AL_APIENTRY *pfn_alSourcef)( ALuint sid, ALenum param, ALfloat value);
// void      (AL_APIENTRY *pfn_alGetSourcei)( ALuint sid, ALenum param, ALint* value );
// void      (AL_APIENTRY *pfn_alSourcePlay)( ALuint sid );
// void      (AL_APIENTRY *pfn_alSourceStop)( ALuint sid );
// void      (AL_APIENTRY *pfn_alSourcePause)( ALuint sid );
// void      (AL_APIENTRY *pfn_alSourceQueueBuffers)(ALuint sid, ALsizei numEntries, const ALuint *bids );
// void      (AL_APIENTRY *pfn_alSourceUnqueueBuffers)(ALuint sid, ALsizei numEntries, ALuint *bids );
// void      (AL_APIENTRY *pfn_alGenBuffers)( ALsizei n, ALuint* buffers );
// void      (AL_APIENTRY *pfn_alDeleteBuffers)( ALsizei n, const ALuint* buffers );
// void      (AL_APIENTRY *pfn_alBufferData)( ALuint bid, ALenum format, const ALvoid* data, ALsizei size, ALsizei freq );
//
// // AL/al.h wrappers for the go bindings.
// AL_API ALenum AL_APIENTRY wrap_alGetError( void ) { return (*pfn_alGetError)(); }
// AL_API void   AL_APIENTRY wrap_alListenerf( int param, float value ) { (*pfn_alListenerf)( param, value ); }
// AL_API void   AL_APIENTRY wrap_alGenSources( int n, unsigned int* sources ) { (*pfn_alGenSources)( n, sources ); }
// AL_API void   AL_APIENTRY wrap_alDeleteSources( int n, const unsigned int* sources ) { (*pfn_alDeleteSources)( n, sources ); }
// AL_API void   AL_APIENTRY wrap_alSourcef( unsigned int sid, int param, float value ) { (*pfn_alSourcef)( sid, param, value ); }
// AL_API void   AL_APIENTRY wrap_alGetSourcei( unsigned int sid, int param, int* value ) { (*pfn_alGetSourcei)( sid, param, value ); }
// AL_API void   AL_APIENTRY wrap_alSourcePlay( unsigned int sid ) { (*pfn_alSourcePlay)( sid ); }
// AL_API void   AL_APIENTRY wrap_alSourceStop( unsigned int sid ) { (*pfn_alSourceStop)( sid ); }
// AL_API void   AL_APIENTRY wrap_alSourcePause( unsigned int sid ) { (*pfn_alSourcePause)( sid ); }
// AL_API void   AL_APIENTRY wrap_alSourceQueueBuffers( unsigned int sid, int numEntries, const unsigned int *bids ) { (*pfn_alSourceQueueBuffers)( sid, numEntries, bids ); }
// AL_API void   AL_APIENTRY wrap_alSourceUnqueueBuffers( unsigned int sid, int numEntries, unsigned int *bids ) { (*pfn_alSourceUnqueueBuffers)( sid, numEntries, bids ); }
// AL_API void   AL_APIENTRY wrap_alGenBuffers( int n, unsigned int* buffers ) { (*pfn_alGenBuffers)( n, buffers ); }
// AL_API void   AL_APIENTRY wrap_alDeleteBuffers( int n, const unsigned int* buffers ) { (*pfn_alDeleteBuffers)( n, buffers ); }
// AL_API void   AL_APIENTRY wrap_alBufferData( unsigned int bid, int format, const ALvoid* data, int size, int freq ) { (*pfn_alBufferData)( bid, format, data, size, freq ); }
//
// // AL/alc.h pointers to the subset of functions this binding exposes.
// ALCcontext *   (ALC_APIENTRY *pfn_alcCreateContext) (ALCdevice *device, const ALCint *attrlist);
// ALCboolean     (ALC_APIENTRY *pfn_alcMakeContextCurrent)( ALCcontext *context );
// void           (ALC_APIENTRY *pfn_alcDestroyContext)( ALCcontext *context );
// ALCdevice *    (ALC_APIENTRY *pfn_alcOpenDevice)( const ALCchar *devicename );
// ALCboolean     (ALC_APIENTRY *pfn_alcCloseDevice)( ALCdevice *device );
//
// // AL/alc.h wrappers for the go bindings.
// ALC_API uintptr_t    ALC_APIENTRY wrap_alcCreateContext( uintptr_t device, const int* attrlist ) { return (uintptr_t)(*pfn_alcCreateContext)((ALCdevice *)device, attrlist); }
// ALC_API ALCboolean   ALC_APIENTRY wrap_alcMakeContextCurrent( uintptr_t context ) { return (*pfn_alcMakeContextCurrent)( (ALCcontext *)context ); }
// ALC_API void         ALC_APIENTRY wrap_alcDestroyContext( uintptr_t context ) { (*pfn_alcDestroyContext)( (ALCcontext *)context ); }
// ALC_API uintptr_t    ALC_APIENTRY wrap_alcOpenDevice( const char *devicename ) { return (uintptr_t)(*pfn_alcOpenDevice)( devicename ); }
// ALC_API ALCboolean   ALC_APIENTRY wrap_alcCloseDevice( uintptr_t device ) { return (*pfn_alcCloseDevice)( (ALCdevice *)device ); }
//
// void al_init() {
//    pfn_alGetError                = bindMethod("alGetError");
//    pfn_alListenerf               = bindMethod("alListenerf");
//    pfn_alGenSources              = bindMethod("alGenSources");
//    pfn_alDeleteSources           = bindMethod("alDeleteSources");
//    pfn_alSourcef                 = bindMethod("alSourcef");
//    pfn_alGetSourcei              = bindMethod("alGetSourcei");
//    pfn_alSourcePlay              = bindMethod("alSourcePlay");
//    pfn_alSourceStop              = bindMethod("alSourceStop");
//    pfn_alSourcePause             = bindMethod("alSourcePause");
//    pfn_alSourceQueueBuffers      = bindMethod("alSourceQueueBuffers");
//    pfn_alSourceUnqueueBuffers    = bindMethod("alSourceUnqueueBuffers");
//    pfn_alGenBuffers              = bindMethod("alGenBuffers");
//    pfn_alDeleteBuffers           = bindMethod("alDeleteBuffers");
//    pfn_alBufferData              = bindMethod("alBufferData");
//
//    pfn_alcCreateContext          = bindMethod("alcCreateContext");
//    pfn_alcMakeContextCurrent     = bindMethod("alcMakeContextCurrent");
//    pfn_alcDestroyContext         = bindMethod("alcDestroyContext");
//    pfn_alcOpenDevice             = bindMethod("alcOpenDevice");
//    pfn_alcCloseDevice            = bindMethod("alcCloseDevice");
// }
import "C"
import "unsafe"

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

// Init binds this package's function pointers to the system OpenAL
// library. Safe to call more than once.
func Init() error {
	C.al_init()
	return nil
}

func cbool(albool uint) bool { return albool == 1 }

// Context and Device are opaque handles; uintptr-sized to match the C
// struct pointers on every platform this binding targets.
type (
	Context uintptr
	Device  uintptr
	Pointer unsafe.Pointer
)

func GetError() int32 { return int32(C.wrap_alGetError()) }

func Listenerf(param int32, value float32) { C.wrap_alListenerf(C.int(param), C.float(value)) }

func GenSources(n int32, sources *uint32)    { C.wrap_alGenSources(C.int(n), (*C.uint)(sources)) }
func DeleteSources(n int32, sources *uint32) { C.wrap_alDeleteSources(C.int(n), (*C.uint)(sources)) }

func Sourcef(sid uint32, param int32, value float32) {
	C.wrap_alSourcef(C.uint(sid), C.int(param), C.float(value))
}

func GetSourcei(sid uint32, param int32, value *int32) {
	C.wrap_alGetSourcei(C.uint(sid), C.int(param), (*C.int)(value))
}

func SourcePlay(sid uint32)  { C.wrap_alSourcePlay(C.uint(sid)) }
func SourceStop(sid uint32)  { C.wrap_alSourceStop(C.uint(sid)) }
func SourcePause(sid uint32) { C.wrap_alSourcePause(C.uint(sid)) }

func SourceQueueBuffers(sid uint32, numEntries int32, bids *uint32) {
	C.wrap_alSourceQueueBuffers(C.uint(sid), C.int(numEntries), (*C.uint)(bids))
}
func SourceUnqueueBuffers(sid uint32, numEntries int32, bids *uint32) {
	C.wrap_alSourceUnqueueBuffers(C.uint(sid), C.int(numEntries), (*C.uint)(bids))
}

func GenBuffers(n int32, buffers *uint32)    { C.wrap_alGenBuffers(C.int(n), (*C.uint)(buffers)) }
func DeleteBuffers(n int32, buffers *uint32) { C.wrap_alDeleteBuffers(C.int(n), (*C.uint)(buffers)) }

func BufferData(bid uint32, format int32, data Pointer, size int32, freq int32) {
	C.wrap_alBufferData(C.uint(bid), C.int(format), unsafe.Pointer(data), C.int(size), C.int(freq))
}

func CreateContext(device Device, attrlist *int32) Context {
	return (Context)(C.wrap_alcCreateContext((C.uintptr_t)(device), (*C.int)(attrlist)))
}

func MakeContextCurrent(context Context) bool {
	return cbool(uint(C.wrap_alcMakeContextCurrent((C.uintptr_t)(context))))
}

func DestroyContext(context Context) {
	C.wrap_alcDestroyContext((C.uintptr_t)(context))
}

func OpenDevice(devicename string) Device {
	if devicename == "" {
		return (Device)(C.wrap_alcOpenDevice(nil))
	}
	cstr := C.CString(devicename)
	defer C.free(unsafe.Pointer(cstr))
	return (Device)(C.wrap_alcOpenDevice(cstr))
}

func CloseDevice(device Device) bool {
	return cbool(uint(C.wrap_alcCloseDevice((C.uintptr_t)(device))))
}
