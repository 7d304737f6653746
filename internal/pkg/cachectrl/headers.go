package cachectrl

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/zeebo/xxh3"
)

func OptIn(ctx *fiber.Ctx, t time.Time) {
	offset := time.Hour
	OptInCustom(ctx, t, offset)
}

func OptInCustom(ctx *fiber.Ctx, t time.Time, offset time.Duration) {
	ctx.Set("Cache-Control", "public, max-age="+strconv.Itoa(int(offset.Seconds())))
	ctx.Set("Expires", t.Add(offset).Format(time.RFC1123))

	ctx.Response().Header.SetLastModified(t)
}

func OptOut(ctx *fiber.Ctx) {
	ctx.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	ctx.Set("Pragma", "no-cache")
	ctx.Set("Expires", "0")
}

// ETag sets a weak entity tag derived from version, the request path and query, and the Accept header. It reports whether the
// client already holds that representation, in which case the response status is set to 304.
func ETag(ctx *fiber.Ctx, version string) (notModified bool) {
	if version == "" {
		return false
	}
	h := xxh3.New()
	_, _ = h.WriteString(ctx.Path())
	_, _ = h.WriteString("\x00")
	_, _ = h.Write(ctx.Request().URI().QueryString())
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(ctx.Get(fiber.HeaderAccept))
	tag := `W/"` + version + "-" + strconv.FormatUint(h.Sum64(), 36) + `"`
	ctx.Set(fiber.HeaderETag, tag)

	for _, candidate := range strings.Split(ctx.Get(fiber.HeaderIfNoneMatch), ",") {
		if strings.TrimSpace(candidate) == tag {
			ctx.Status(fiber.StatusNotModified)
			return true
		}
	}
	return false
}
