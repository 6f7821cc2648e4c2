// SPDX-License-Identifier: MIT

package lstsq

import logging "github.com/ipfs/go-log/v2"

var log = logging.Logger("lstsq")
