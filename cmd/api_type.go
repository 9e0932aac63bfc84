package cmd

import (
	"github.com/hotglue/target-salesforce/config"
)

// apiTypeValue is the --api-type flag; it rejects anything but REST or BULK at parse time.
type apiTypeValue struct {
	value config.APIType
}

func (a *apiTypeValue) String() string {
	return string(a.value)
}

func (a *apiTypeValue) Set(s string) error {
	t, err := config.ParseAPIType(s)
	if err != nil {
		return err
	}
	a.value = t
	return nil
}

func (a *apiTypeValue) Type() string {
	return "REST|BULK"
}
