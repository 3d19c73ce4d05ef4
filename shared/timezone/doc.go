// Package timezone holds the location used to date published exports.
//
// Call Init once at startup with the loaded configuration:
//
//	timezone.Init(config.Get())
//	dir := timezone.Format(time.Now(), constant.DatePathLayout)
//
// The location comes from APP_TIMEZONE and must be an IANA name such as "UTC",
// "Asia/Jakarta" or "Europe/London". An unknown name falls back to UTC.
package timezone
