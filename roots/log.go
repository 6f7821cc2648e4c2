// SPDX-License-Identifier: MIT

package roots

import logging "github.com/ipfs/go-log/v2"

var log = logging.Logger("roots")
