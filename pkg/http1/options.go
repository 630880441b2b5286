package http1

import "time"

type Options struct {
	KeepAlive   bool
	ContentType string
	Server      string
	Date        func() time.Time
}

type Option func(options *Options) (err error)

// WithKeepAlive
// 设置是否保持链接。默认为 true。
//
// 为 false 时，HTTP/1.1 的响应会带上 connection: close。
func WithKeepAlive(keepAlive bool) Option {
	return func(options *Options) (err error) {
		options.KeepAlive = keepAlive
		return
	}
}

// WithDefaultContentType
// 设置默认的 content-type，仅在响应可以有内容且调用方未设置时添加。
func WithDefaultContentType(contentType string) Option {
	return func(options *Options) (err error) {
		if contentType == "" {
			return
		}
		if !validValue(contentType) {
			err = invalidHeader(errMetaOpHead, "content-type")
			return
		}
		options.ContentType = contentType
		return
	}
}

// WithServer
// 设置 server 头。
func WithServer(server string) Option {
	return func(options *Options) (err error) {
		if !validValue(server) {
			err = invalidHeader(errMetaOpHead, "server")
			return
		}
		options.Server = server
		return
	}
}

// WithDate
// 设置 date 头的时钟，为 nil 时不添加 date 头。
func WithDate(clock func() time.Time) Option {
	return func(options *Options) (err error) {
		options.Date = clock
		return
	}
}
