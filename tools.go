/*
 * (C) Copyright 2024 Johan Michel PIQUET, France (https://johanpiquet.fr/).
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package httpRepresentation

import (
	"context"
	"os"
	"path"
)

// SaveBodyToFile streams the whole body into a file, creating the
// parent directory if needed. The body is consumed.
func SaveBodyToFile(ctx context.Context, body *Body, outFilePath string) error {
	fo, err := os.Create(outFilePath)
	if err != nil {
		err = os.MkdirAll(path.Dir(outFilePath), os.ModePerm)
		if err != nil {
			return err
		}

		fo, err = os.Create(outFilePath)
		if err != nil {
			return err
		}
	}

	defer fo.Close()

	return body.WriteTo(ctx, fo)
}
