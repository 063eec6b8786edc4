package utils

import (
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

func SafeGo(log *logrus.Logger, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(logrus.Fields{
					"panic": r,
					"stack": string(debug.Stack()),
				}).Error("[SafeGo] recovered from panic")
			}
		}()
		fn()
	}()
}
