package payment

import "errors"

var ErrNoWallets = errors.New("no wallets")
