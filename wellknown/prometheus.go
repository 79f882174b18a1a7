// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package wellknown

// PrometheusNamespaceKopexa is the name of the prometheus namespace all metrics created by this library should be part of
const PrometheusNamespaceKopexa = "kopexa"
