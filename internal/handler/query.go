package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/fantasy-stats-service/internal/service"
)

const dateLayout = "2006-01-02"

// queryParser reads optional query parameters and collects every malformed one,
// so a request with two bad values gets both reported in a single 400.
type queryParser struct {
	c    *gin.Context
	errs []service.FieldError
}

func newQueryParser(c *gin.Context) *queryParser { return &queryParser{c: c} }

func (p *queryParser) fail(field, msg string) {
	p.errs = append(p.errs, service.FieldError{Field: field, Message: msg})
}

// value returns the last occurrence of a repeated parameter; absent and empty both report false.
func (p *queryParser) value(name string) (string, bool) {
	vs := p.c.QueryArray(name)
	if len(vs) == 0 || vs[len(vs)-1] == "" {
		return "", false
	}
	return vs[len(vs)-1], true
}

// text returns nil when the parameter is absent or empty. Other values are matched exactly, whitespace included.
func (p *queryParser) text(name string) *string {
	v, ok := p.value(name)
	if !ok {
		return nil
	}
	return &v
}

func (p *queryParser) number(name string) *int {
	v, ok := p.value(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		p.fail(name, "must be a valid integer")
		return nil
	}
	return &n
}

func (p *queryParser) id(name string) *int64 {
	v, ok := p.value(name)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		p.fail(name, "must be a valid integer")
		return nil
	}
	return &n
}

func (p *queryParser) date(name string) *time.Time {
	v, ok := p.value(name)
	if !ok {
		return nil
	}
	d, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		p.fail(name, "must be a date in YYYY-MM-DD format")
		return nil
	}
	return &d
}

func (p *queryParser) page() service.PageParams {
	return service.PageParams{Skip: p.number("skip"), Limit: p.number("limit")}
}

func (p *queryParser) err() error { return service.NewInvalidInputError(p.errs) }

// pathID parses an integer path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, service.NewInvalidInputError([]service.FieldError{{Field: name, Message: "must be a valid integer"}})
	}
	return id, nil
}
