// SPDX-License-Identifier: MIT

package solver

import logging "github.com/ipfs/go-log/v2"

var log = logging.Logger("solver")
