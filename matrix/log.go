// SPDX-License-Identifier: MIT

package matrix

import logging "github.com/ipfs/go-log/v2"

var log = logging.Logger("matrix")
