// Package code defines the API result code table and the response payload
// each code carries.
package code

import (
	"fmt"
	"net/http"
)

type Code struct {
	code        int
	status      bool
	msg         string
	data        interface{}
	haveData    bool
	details     []string
	haveDetails bool
}

var codes = map[int]string{}

// NewError registers a failure code. Duplicate registration is a programmer
// error and panics at init time.
func NewError(code int, msg string) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("error code %d already exists", code))
	}
	codes[code] = msg
	return &Code{code: code, status: false, msg: msg}
}

var sussCodes = map[int]string{}

// NewSuss registers a success code.
func NewSuss(code int, msg string) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("success code %d already exists", code))
	}
	sussCodes[code] = msg
	return &Code{code: code, status: true, msg: msg}
}

// Clone creates a copy so WithData/WithDetails never mutate the registered
// code object shared across requests.
func (e *Code) Clone() *Code {
	c := &Code{
		code:   e.code,
		status: e.status,
		msg:    e.msg,
	}
	if e.haveData {
		c.haveData = true
		c.data = e.data
	}
	if e.haveDetails {
		c.haveDetails = true
		c.details = append([]string{}, e.details...)
	}
	return c
}

func (e *Code) Error() string {
	return e.msg
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) Status() bool {
	return e.status
}

func (e *Code) Msg() string {
	return e.msg
}

func (e *Code) Data() interface{} {
	return e.data
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) HaveData() bool {
	return e.haveData
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

func (e *Code) WithData(data interface{}) *Code {
	c := e.Clone()
	c.haveData = true
	c.data = data
	return c
}

func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.haveDetails = true
	c.details = append(c.details, details...)
	return c
}

// StatusCode maps the result code onto the transport status. The envelope
// always rides HTTP 200; clients switch on the embedded code.
func (e *Code) StatusCode() int {
	return http.StatusOK
}
