// SPDX-License-Identifier: EPL-2.0

package audsys

import (
	"io"
	"io/fs"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
)

// The functions below call the same-named methods of Default().

func Describe(r io.Reader) (*format.ExtendedFileFormat, error) { return Default().Describe(r) }

func DescribeFile(path string) (*format.ExtendedFileFormat, error) {
	return Default().DescribeFile(path)
}

func DescribeResource(fsys fs.FS, name string) (*format.ExtendedFileFormat, error) {
	return Default().DescribeResource(fsys, name)
}

func Decode(r io.Reader) (audio.Stream, error) { return Default().Decode(r) }

func DecodeFile(path string) (audio.Stream, error) { return Default().DecodeFile(path) }

func DecodeResource(fsys fs.FS, name string) (audio.Stream, error) {
	return Default().DecodeResource(fsys, name)
}

func Write(stream audio.Stream, t format.Type, quality float32, w io.Writer) (int64, error) {
	return Default().Write(stream, t, quality, w)
}

func WriteWithProperties(stream audio.Stream, t format.Type, props format.Properties, w io.Writer) (int64, error) {
	return Default().WriteWithProperties(stream, t, props, w)
}

func WriteFile(stream audio.Stream, t format.Type, quality float32, path string) (int64, error) {
	return Default().WriteFile(stream, t, quality, path)
}

func Convert(target format.Format, stream audio.Stream) (audio.Stream, error) {
	return Default().Convert(target, stream)
}

func IsConversionSupported(target, source format.Format) bool {
	return Default().IsConversionSupported(target, source)
}

func TargetEncodings(source format.Format) []format.Encoding {
	return Default().TargetEncodings(source)
}

func ReaderEncodings() []format.Encoding { return Default().ReaderEncodings() }
func WriterEncodings() []format.Encoding { return Default().WriterEncodings() }
func ReaderTypes() []format.Type         { return Default().ReaderTypes() }
func WriterTypes() []format.Type         { return Default().WriterTypes() }

func IsReaderSupportedEncoding(e format.Encoding) bool { return Default().IsReaderSupportedEncoding(e) }
func IsWriterSupportedEncoding(e format.Encoding) bool { return Default().IsWriterSupportedEncoding(e) }
func IsReaderSupportedType(t format.Type) bool         { return Default().IsReaderSupportedType(t) }
func IsWriterSupportedType(t format.Type) bool         { return Default().IsWriterSupportedType(t) }

func WriterEncodingsForType(t format.Type) []format.Encoding {
	return Default().WriterEncodingsForType(t)
}

func WriterEncodingsFor(stream audio.Stream) []format.Encoding {
	return Default().WriterEncodingsFor(stream)
}

func IsWriterSupportedEncodingFor(e format.Encoding, stream audio.Stream) bool {
	return Default().IsWriterSupportedEncodingFor(e, stream)
}

func WriterTypesFor(stream audio.Stream) []format.Type { return Default().WriterTypesFor(stream) }

func IsWriterSupportedTypeFor(t format.Type, stream audio.Stream) bool {
	return Default().IsWriterSupportedTypeFor(t, stream)
}

func EncodingByName(name string) (format.Encoding, bool) { return Default().EncodingByName(name) }
func TypeByName(name string) (format.Type, bool)         { return Default().TypeByName(name) }
func TypeBySuffix(suffix string) (format.Type, bool)     { return Default().TypeBySuffix(suffix) }
