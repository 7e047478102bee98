package borrowstack

import "errors"

var ErrBorrowed = errors.New("borrowstack: stack modified while its top frame is borrowed by Grow")
